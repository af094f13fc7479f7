package config

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_NewConfigurationInstance_emptyDocumentYieldsDefaults(t *testing.T) {
	assertion := assert.New(t)

	sut := NewConfigurationInstance(Raw{})

	assertion.NotNil(sut)
	assertion.Equal(log.InfoLevel, sut.Global().LogLevel())
	assertion.Equal("rclone", sut.Global().RcloneBinary())
	assertion.True(sut.Global().FastList())
	assertion.Equal([]string{"/System Volume Information/**"}, sut.Global().Excludes())
	assertion.Equal(8080, sut.Http().Port)
	assertion.Nil(sut.Http().BasicAuth)
	assertion.Nil(sut.Http().Tls)
	assertion.Equal(time.Hour, sut.Serve().UpdateInterval())
	assertion.Nil(sut.Serve().Schedule())
	assertion.True(sut.Listers().LocalWalker())
	assertion.Empty(sut.Listers().S3())
}

func Test_NewConfigurationInstance_parsesGlobalSection(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
log_level: debug
rclone_binary: /usr/local/bin/rclone
rclone_config: /etc/rclone-diff/rclone.conf
fast_list: false
excludes:
  - "*.tmp"
warn_delta_bytes: 10G
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal(log.DebugLevel, sut.Global().LogLevel())
	assertion.Equal("/usr/local/bin/rclone", sut.Global().RcloneBinary())
	assertion.Equal("/etc/rclone-diff/rclone.conf", sut.Global().RcloneConfig())
	assertion.False(sut.Global().FastList())
	assertion.Equal([]string{"*.tmp"}, sut.Global().Excludes())
	assertion.Equal(uint64(10*1024*1024*1024), sut.Global().WarnDeltaBytes())
}

func Test_NewConfigurationInstance_invalidLogLevelFallsBackToInfo(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString("log_level: chatty")
	sut := NewConfigurationInstance(raw)

	assertion.Equal(log.InfoLevel, sut.Global().LogLevel())
}

func Test_NewConfigurationInstance_parsesHttpSection(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
http:
  port: 9090
  basic_auth:
    username: admin
    password: secret
  tls:
    certificate: /etc/ssl/cert.pem
    private_key: /etc/ssl/key.pem
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal(9090, sut.Http().Port)
	assertion.NotNil(sut.Http().BasicAuth)
	assertion.Equal("admin", sut.Http().BasicAuth.Username)
	assertion.Equal("secret", sut.Http().BasicAuth.Password)
	assertion.NotNil(sut.Http().Tls)
	assertion.Equal("/etc/ssl/cert.pem", sut.Http().Tls.CertificatePath)
	assertion.True(sut.Http().Tls.IsStrict)
}

func Test_NewConfigurationInstance_incompleteBasicAuthIsDisabled(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
http:
  basic_auth:
    username: admin
`)
	sut := NewConfigurationInstance(raw)

	assertion.Nil(sut.Http().BasicAuth, spew.Sdump(sut.Http()))
}

func Test_NewConfigurationInstance_tooSmallUpdateIntervalIsRejected(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
serve:
  update_interval: 30s
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal(time.Hour, sut.Serve().UpdateInterval())
}

func Test_NewConfigurationInstance_parsesServeSection(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
serve:
  update_interval: 1h 30m
  schedule: "0 3 * * *"
  source: nas:photos
  destination: s3:backup/photos
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal(90*time.Minute, sut.Serve().UpdateInterval())
	assertion.NotNil(sut.Serve().Schedule())
	assertion.Equal("nas:photos", sut.Serve().Source())
	assertion.Equal("s3:backup/photos", sut.Serve().Destination())
}

func Test_NewConfigurationInstance_canDetectRegionForS3Lister(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
listers:
  s3:
    archive:
      region: eu-central-2
      access_key_id: AKIA123
      secret_access_key: hunter2
      force_path_style: true
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal(1, len(sut.Listers().S3()), spew.Sdump(sut.Listers()))

	lister := sut.Listers().S3()["archive"]
	assertion.NotNil(lister)
	assertion.Equal("archive", lister.Remote)
	assertion.Equal("eu-central-2", lister.Region)
	assertion.Equal("AKIA123", lister.AccessKey)
	assertion.Equal("hunter2", lister.SecretKey)
	assertion.True(lister.ForcePathStyle)
}

func Test_NewConfigurationInstance_s3ListerRegionDefaults(t *testing.T) {
	assertion := assert.New(t)

	raw, _ := ParseFromString(
		`
listers:
  local_walker: false
  s3:
    archive:
      access_key_id: AKIA123
      secret_access_key: hunter2
`)
	sut := NewConfigurationInstance(raw)

	assertion.False(sut.Listers().LocalWalker())
	assertion.Equal("eu-central-1", sut.Listers().S3()["archive"].Region)
}

func Test_NewConfigurationInstance_interpolatesCredentialsFromEnvironment(t *testing.T) {
	assertion := assert.New(t)

	t.Setenv("ARCHIVE_SECRET", "from-env")

	raw, _ := ParseFromString(
		`
listers:
  s3:
    archive:
      access_key_id: AKIA123
      secret_access_key: __${ARCHIVE_SECRET}__
`)
	sut := NewConfigurationInstance(raw)

	assertion.Equal("from-env", sut.Listers().S3()["archive"].SecretKey)
}
