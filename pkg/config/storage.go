package config

type StorageProvider string

const (
	StorageLocal StorageProvider = "local"
	StorageS3    StorageProvider = "s3"
)

type StorageConfig struct {
	Provider  StorageProvider
	LocalPath string
	S3Bucket  string
	S3Region  string
	S3Prefix  string
	// MaxUploadBytes caps resume and JD uploads
	MaxUploadBytes int64
	// MaxRecordingBytes caps interview recordings
	MaxRecordingBytes int64
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Provider:          StorageProvider(getEnv("STORAGE_PROVIDER", string(StorageLocal))),
		LocalPath:         getEnv("STORAGE_LOCAL_PATH", "./data/files"),
		S3Bucket:          getEnv("STORAGE_S3_BUCKET", ""),
		S3Region:          getEnv("AWS_REGION", "us-east-1"),
		S3Prefix:          getEnv("STORAGE_S3_PREFIX", "talentdesk"),
		MaxUploadBytes:    getEnvInt64("STORAGE_MAX_UPLOAD_BYTES", 10*1024*1024),
		MaxRecordingBytes: getEnvInt64("STORAGE_MAX_RECORDING_BYTES", 100*1024*1024),
	}
}

// RequestLimit is the largest request body an upload may need
func (s StorageConfig) RequestLimit() int {
	limit := s.MaxUploadBytes
	if s.MaxRecordingBytes > limit {
		limit = s.MaxRecordingBytes
	}
	// multipart framing
	return int(limit) + 1024*1024
}
