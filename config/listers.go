package config

type ListersConfiguration struct {
	localWalker bool
	s3          map[string]*S3ListerConfiguration
}

func (config *ListersConfiguration) LocalWalker() bool {
	return config.localWalker
}

func (config *ListersConfiguration) S3() map[string]*S3ListerConfiguration {
	return config.s3
}

// S3ListerConfiguration holds native credentials for a remote so its
// listings can bypass the rclone binary.
type S3ListerConfiguration struct {
	Remote         string
	Region         string
	AccessKey      string
	SecretKey      string
	Endpoint       string
	ForcePathStyle bool
	Token          string
}
