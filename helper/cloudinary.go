package helper

import (
	"bytes"
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var (
	cld     *cloudinary.Cloudinary
	cldOnce sync.Once
)

func Cloudinary() *cloudinary.Cloudinary {
	cldOnce.Do(func() {
		var err error
		cld, err = cloudinary.NewFromParams(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			log.Fatalf("Cloudinary init failed: %v", err)
		}
	})
	return cld
}

// UploadInvoice stores rendered invoice bytes under the given key
// (invoices/{orderid}-{orderno}) and returns the public URL
func UploadInvoice(ctx context.Context, content []byte, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	result, err := Cloudinary().Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		PublicID:     key,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
