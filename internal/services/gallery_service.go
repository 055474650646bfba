package services

import (
	"context"
	"mime/multipart"
	"path"
	"sort"
	"strings"

	"modernband/internal/domain"
	"modernband/internal/site"
	"modernband/internal/storage"
	"modernband/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type MediaBucket interface {
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	UploadMultipartFile(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

// GalleryService serves the gallery from a bucket when one is configured and from
// the bundled catalogue otherwise, or when the bucket cannot be listed.
type GalleryService struct {
	Bucket    MediaBucket
	Prefix    string
	RequestID string
}

var videoExts = map[string]bool{".mp4": true, ".mov": true, ".webm": true, ".m4v": true}

func (s GalleryService) prefix() string {
	p := strings.TrimLeft(s.Prefix, "/")
	if p != "" && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func (s GalleryService) List(ctx context.Context, category string) []site.GalleryItem {
	items := site.Gallery
	if s.Bucket != nil {
		objs, err := s.Bucket.List(ctx, s.prefix())
		if err != nil {
			utils.LogError(s.RequestID, "gallery", "list_bucket", err)
		} else if len(objs) > 0 {
			items = ItemsFromObjects(objs, s.prefix())
		}
	}
	return FilterGallery(items, category)
}

// ItemsFromObjects expects keys like <prefix><category>/<file>; the file name becomes the title.
func ItemsFromObjects(objs []storage.Object, prefix string) []site.GalleryItem {
	titler := cases.Title(language.English)
	out := make([]site.GalleryItem, 0, len(objs))
	for i, o := range objs {
		rel := strings.TrimPrefix(o.Key, prefix)
		category := "item"
		if dir := path.Dir(rel); dir != "." && dir != "" {
			category = strings.Split(dir, "/")[0]
		}
		file := path.Base(rel)
		ext := strings.ToLower(path.Ext(file))
		name := strings.TrimSuffix(file, path.Ext(file))
		if len(name) > 37 && name[36] == '-' {
			if _, err := uuid.Parse(name[:36]); err == nil {
				name = name[37:]
			}
		}
		name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
		title := titler.String(utils.NormalizeSpace(name))

		typ := "image"
		if videoExts[ext] {
			typ = "video"
			category = "video"
		}
		out = append(out, site.GalleryItem{
			ID:       i + 1,
			Type:     typ,
			Src:      o.URL,
			Alt:      title,
			Title:    title,
			Category: category,
		})
	}
	return out
}

// FilterGallery keeps one category ("all" or empty keeps everything) with priority items first.
func FilterGallery(items []site.GalleryItem, category string) []site.GalleryItem {
	category = strings.TrimSpace(category)
	if category == "" || category == "all" {
		return append([]site.GalleryItem(nil), items...)
	}
	out := []site.GalleryItem{}
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority && !out[j].Priority
	})
	return out
}

// Upload stores an admin-provided file under <prefix><category>/<uuid>-<name>.
func (s GalleryService) Upload(ctx context.Context, category string, file *multipart.FileHeader) (string, error) {
	if s.Bucket == nil {
		return "", domain.ConflictError{Resource: "gallery", Msg: "media storage is not configured"}
	}
	category = utils.SafeFilenamePart(strings.ToLower(category))
	if category == "unknown" {
		category = "item"
	}
	if file == nil || file.Size == 0 {
		return "", domain.ValidationError{Field: "file", Msg: "Please choose a file to upload"}
	}
	name := utils.SafeFilenamePart(strings.TrimSuffix(file.Filename, path.Ext(file.Filename)))
	key := s.prefix() + category + "/" + uuid.NewString() + "-" + name + strings.ToLower(path.Ext(file.Filename))

	url, err := s.Bucket.UploadMultipartFile(ctx, key, file)
	if err != nil {
		utils.LogError(s.RequestID, "gallery", "upload", err)
		return "", domain.InternalError{Msg: "upload failed", Err: err}
	}
	utils.LogEvent(s.RequestID, "gallery", "upload", "key="+key)
	return url, nil
}
