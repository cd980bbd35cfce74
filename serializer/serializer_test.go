package serializer_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxconv"
	"github.com/syssam/veloxconv/serializer"
)

type Point struct {
	X int `json:"x" yaml:"x" msgpack:"x"`
	Y int `json:"y" yaml:"y" msgpack:"y"`
}

type Label string

func TestNew(t *testing.T) {
	for _, format := range []string{serializer.FormatJSON, serializer.FormatYAML, serializer.FormatMessagePack} {
		s, err := serializer.New(format)
		require.NoError(t, err)
		assert.Equal(t, format, s.Format())
	}

	s, err := serializer.New("")
	require.NoError(t, err)
	assert.Equal(t, serializer.FormatJSON, s.Format())

	_, err = serializer.New("xml")
	assert.EqualError(t, err, `serializer: unknown format "xml"`)
}

func TestJSON(t *testing.T) {
	t.Parallel()
	s := serializer.JSON()

	t.Run("Quoted", func(t *testing.T) {
		t.Parallel()
		text, err := s.SerializeQuoted("Red")
		require.NoError(t, err)
		assert.Equal(t, `"Red"`, text)

		text, err = s.SerializeQuoted(Point{X: 1, Y: 2})
		require.NoError(t, err)
		assert.Equal(t, `{"x":1,"y":2}`, text)
	})

	t.Run("Raw", func(t *testing.T) {
		t.Parallel()
		text, err := s.SerializeRaw("Red")
		require.NoError(t, err)
		assert.Equal(t, "Red", text)

		text, err = s.SerializeRaw(Label("blue"))
		require.NoError(t, err)
		assert.Equal(t, "blue", text)

		text, err = s.SerializeRaw(int64(3))
		require.NoError(t, err)
		assert.Equal(t, "3", text)

		id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		text, err = s.SerializeRaw(id)
		require.NoError(t, err)
		assert.Equal(t, id.String(), text)
	})

	t.Run("Deserialize", func(t *testing.T) {
		t.Parallel()
		v, err := s.Deserialize(`{"x":1,"y":2}`, reflect.TypeFor[Point]())
		require.NoError(t, err)
		assert.Equal(t, Point{X: 1, Y: 2}, v)

		v, err = s.Deserialize(`{"a":[1,2]}`, reflect.TypeFor[map[string][]int]())
		require.NoError(t, err)
		assert.Equal(t, map[string][]int{"a": {1, 2}}, v)
	})

	t.Run("Errors", func(t *testing.T) {
		t.Parallel()
		_, err := s.Deserialize(`{"x":`, reflect.TypeFor[Point]())
		require.Error(t, err)
		assert.True(t, veloxconv.IsDeserialization(err))

		_, err = s.Deserialize(`{}`, nil)
		assert.True(t, veloxconv.IsDeserialization(err))

		_, err = s.SerializeQuoted(make(chan int))
		require.Error(t, err)
		assert.True(t, veloxconv.IsSerialization(err))
	})
}

func TestYAML(t *testing.T) {
	t.Parallel()
	s := serializer.YAML()

	text, err := s.SerializeQuoted(Point{X: 1, Y: 2})
	require.NoError(t, err)
	// yaml.v3 quotes keys that YAML 1.1 reads as booleans.
	assert.Equal(t, "x: 1\n\"y\": 2", text)

	text, err = s.SerializeRaw("Red")
	require.NoError(t, err)
	assert.Equal(t, "Red", text)

	v, err := s.Deserialize(text, reflect.TypeFor[string]())
	require.NoError(t, err)
	assert.Equal(t, "Red", v)

	v, err = s.Deserialize("x: 3\ny: 4", reflect.TypeFor[Point]())
	require.NoError(t, err)
	assert.Equal(t, Point{X: 3, Y: 4}, v)

	_, err = s.Deserialize("x: [", reflect.TypeFor[Point]())
	assert.True(t, veloxconv.IsDeserialization(err))
}

func TestMessagePack(t *testing.T) {
	t.Parallel()
	s := serializer.MessagePack()

	text, err := s.SerializeQuoted(Point{X: 5, Y: 6})
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	v, err := s.Deserialize(text, reflect.TypeFor[Point]())
	require.NoError(t, err)
	assert.Equal(t, Point{X: 5, Y: 6}, v)

	text, err = s.SerializeRaw("Red")
	require.NoError(t, err)
	assert.Equal(t, "Red", text)

	_, err = s.Deserialize("%%%not-base64", reflect.TypeFor[Point]())
	require.Error(t, err)
	assert.True(t, veloxconv.IsDeserialization(err))
}
