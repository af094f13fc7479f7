package rclone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const lsjsonFixture = `[
  {"Path":"x.txt","Name":"x.txt","Size":10,"MimeType":"text/plain","ModTime":"2024-03-01T12:00:00.000000000Z","IsDir":false},
  {"Path":"dir","Name":"dir","Size":-1,"ModTime":"2024-03-01T12:00:00Z","IsDir":true},
  {"Path":"dir/y.txt","Name":"y.txt","Size":20,"ModTime":"2024-03-01T12:00:05.123456789Z","IsDir":false}
]`

func Test_decodeEntries(t *testing.T) {
	assert := assert.New(t)

	entries, err := decodeEntries([]byte(lsjsonFixture))

	assert.NoError(err)
	assert.Len(entries, 3)

	assert.Equal("x.txt", entries[0].Path)
	assert.Equal(uint64(10), entries[0].Size)
	assert.False(entries[0].IsDir)
	assert.True(entries[0].ModTime.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))

	// unknown size (-1) is treated as 0
	assert.True(entries[1].IsDir)
	assert.Equal(uint64(0), entries[1].Size)

	assert.Equal("dir/y.txt", entries[2].Path)
	assert.Equal("y.txt", entries[2].Name)
}

func Test_decodeEntries_malformedJson(t *testing.T) {
	assert := assert.New(t)

	_, err := decodeEntries([]byte(`{"not":"an array"`))

	assert.Error(err)
}

func Test_decodeEntries_badModTime(t *testing.T) {
	assert := assert.New(t)

	_, err := decodeEntries([]byte(`[{"Path":"a","Size":1,"ModTime":"yesterday","IsDir":false}]`))

	assert.Error(err)
}

func Test_decodeRemoteNames_sorted(t *testing.T) {
	assert := assert.New(t)

	dump := `{"zebra":{"type":"s3"},"alpha":{"type":"drive"},"mid":{"type":"sftp"}}`
	names, err := decodeRemoteNames([]byte(dump))

	assert.NoError(err)
	assert.Equal([]string{"alpha", "mid", "zebra"}, names)
}

func Test_decodeRemoteNames_malformed(t *testing.T) {
	assert := assert.New(t)

	_, err := decodeRemoteNames([]byte(`[]`))

	assert.Error(err)
}
