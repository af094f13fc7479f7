package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseLocation_remote(t *testing.T) {
	assert := assert.New(t)

	loc := ParseLocation("gdrive:backup/photos")

	assert.Equal("gdrive", loc.Remote)
	assert.Equal("backup/photos", loc.Path)
	assert.False(loc.IsLocal())
	assert.Equal("gdrive:backup/photos", loc.String())
}

func Test_ParseLocation_barePath(t *testing.T) {
	assert := assert.New(t)

	loc := ParseLocation("/home/user/data")

	assert.True(loc.IsLocal())
	assert.Equal("/home/user/data", loc.String())
}

func Test_ParseLocation_windowsDrive(t *testing.T) {
	assert := assert.New(t)

	loc := ParseLocation(`C:\backups`)

	assert.True(loc.IsLocal())
	assert.Equal(`C:\backups`, loc.Path)
}

func Test_ParseLocation_localPseudoRemote(t *testing.T) {
	assert := assert.New(t)

	loc := ParseLocation("local:/srv/data")

	assert.True(loc.IsLocal())
	assert.Equal("/srv/data", loc.Path)
	// local locations render as the bare path
	assert.Equal("/srv/data", loc.String())
}

func Test_EnsureTrailingSlash(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a/b/", EnsureTrailingSlash("a/b"))
	assert.Equal("a/b/", EnsureTrailingSlash("a/b/"))
	assert.Equal(`C:\`, EnsureTrailingSlash(`C:\`))
	assert.Equal("", EnsureTrailingSlash(""))
}

func Test_Normalized(t *testing.T) {
	assert := assert.New(t)

	loc := Location{Remote: "s3remote", Path: "bucket/prefix"}

	assert.Equal("bucket/prefix/", loc.Normalized().Path)
	// original untouched
	assert.Equal("bucket/prefix", loc.Path)
}
