package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

type FileService interface {
	// UploadReceipt stores an expense receipt and returns the storage path.
	// The stored name is sanitized and unique; the caller keeps the original
	// filename separately on the expense record.
	UploadReceipt(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	DownloadFile(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadReceipt uploads an expense receipt. Image receipts are recompressed to
// a bounded size; PDFs and other documents are stored as-is.
func (s *fileServiceImpl) UploadReceipt(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".jpg", ".jpeg", ".png", ".pdf"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png, pdf allowed")
	}

	contentType := "application/pdf"
	var content io.Reader = file

	if ext != ".pdf" {
		buffer, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("failed to read receipt image: %w", err)
		}

		compressed, err := compressImage(buffer, 300*1024)
		if err != nil {
			return "", fmt.Errorf("failed to compress receipt image: %w", err)
		}

		// Compression always re-encodes as JPEG
		content = bytes.NewReader(compressed)
		contentType = "image/jpeg"
		ext = ".jpg"
	}

	uniqueID := uuid.New().String()
	timestamp := time.Now().Unix()
	newFilename := fmt.Sprintf("%s-%d%s", uniqueID, timestamp, ext)
	path := filepath.Join("receipts", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, content, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload receipt: %w", err)
	}

	return uploadedPath, nil
}

// DownloadFile retrieves a stored file
func (s *fileServiceImpl) DownloadFile(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// compressImage re-encodes an image as JPEG under maxSize, reducing quality
// first and resizing as a last resort.
func compressImage(buffer []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}

		compressed = buf.Bytes()
		if len(compressed) <= maxSize {
			return compressed, nil
		}
		quality -= 5
	}

	// Quality reduction was not enough, scale the image down
	ratio := math.Sqrt(float64(maxSize) / float64(len(compressed)))
	newWidth := int(float64(originalWidth) * ratio)
	newHeight := int(float64(originalHeight) * ratio)
	if newWidth < 600 {
		newWidth = 600
	}
	if newHeight < 400 {
		newHeight = 400
	}

	resized := resizeImage(img, newWidth, newHeight)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}

// resizeImage resizes an image using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
