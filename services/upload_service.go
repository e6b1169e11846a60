package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Ekstensi file avatar yang diizinkan. Ini satu-satunya validasi;
// tidak ada sniffing content-type maupun batas ukuran.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AvatarStorage abstracts where avatar files end up (local disk or S3).
type AvatarStorage interface {
	Save(name string, src io.Reader) error
	URL(baseURL, name string) string
}

// UploadService validates and stores avatar uploads.
type UploadService struct {
	storage AvatarStorage
	log     *logrus.Logger
}

// NewUploadService creates a new UploadService.
func NewUploadService(storage AvatarStorage, log *logrus.Logger) *UploadService {
	return &UploadService{storage: storage, log: log}
}

// StoreAvatar menyimpan file avatar dengan nama unik <userID>_<uuid>.<ext>
// dan mengembalikan URL publiknya. baseURL adalah origin request (skema + host).
func (s *UploadService) StoreAvatar(userID, filename string, src io.Reader, baseURL string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrFileTypeNotAllowed
	}

	// Sertakan ID user di nama file supaya unik per pengguna
	name := fmt.Sprintf("%s_%s%s", userID, uuid.New().String(), ext)

	if err := s.storage.Save(name, src); err != nil {
		s.log.Error("Gagal menyimpan avatar: ", err)
		return "", err
	}

	return s.storage.URL(baseURL, name), nil
}

// LocalAvatarStorage stores avatars in a flat directory on disk.
type LocalAvatarStorage struct {
	Dir string
}

func (l *LocalAvatarStorage) Save(name string, src io.Reader) error {
	// Pastikan folder upload ada
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	dst, err := os.Create(filepath.Join(l.Dir, name))
	if err != nil {
		return fmt.Errorf("gagal membuat file avatar: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("gagal menulis file avatar: %w", err)
	}
	return nil
}

func (l *LocalAvatarStorage) URL(baseURL, name string) string {
	return fmt.Sprintf("%s/uploads/%s", strings.TrimSuffix(baseURL, "/"), name)
}

// S3AvatarStorage mengunggah avatar ke bucket S3 dan melayani lewat URL publik bucket.
type S3AvatarStorage struct {
	Client *s3.Client
	Bucket string
	Region string
}

// NewS3AvatarStorage creates an S3-backed avatar storage.
func NewS3AvatarStorage(awsCfg aws.Config, bucket, region string) *S3AvatarStorage {
	return &S3AvatarStorage{
		Client: s3.NewFromConfig(awsCfg),
		Bucket: bucket,
		Region: region,
	}
}

func (s *S3AvatarStorage) Save(name string, src io.Reader) error {
	uploader := manager.NewUploader(s.Client)

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("gagal membaca file avatar: %w", err)
	}

	key := "avatars/" + name

	upInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mime.TypeByExtension(filepath.Ext(name))),
	}

	if _, err := uploader.Upload(context.TODO(), upInput); err != nil {
		return fmt.Errorf("gagal mengunggah avatar ke S3: %w", err)
	}
	return nil
}

func (s *S3AvatarStorage) URL(_ string, name string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/avatars/%s", s.Bucket, s.Region, name)
}
