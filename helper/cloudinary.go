package helper

import (
	"log"

	"store_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds a client for the store's media account. Product and
// store images are uploaded browser-side with a signature from
// handler.GenerateSignature; the client here only deletes assets.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}
