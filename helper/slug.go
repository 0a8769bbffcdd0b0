package helper

import (
	"fmt"

	"store_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueStoreSlug appends -1, -2, ... until the slug is free.
// excludeId keeps a store's own slug valid when renaming.
func GenerateUniqueStoreSlug(tx *gorm.DB, name string, excludeId uint) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Store{}).
			Where("slug = ? AND id <> ?", result, excludeId).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
