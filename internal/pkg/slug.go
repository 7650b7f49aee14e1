package pkg

import "github.com/gosimple/slug"

// Slugify 社区名 -> slug，小写、连字符分隔
func Slugify(name string) string {
	return slug.Make(name)
}
