package weather

import "slices"

// Icons is the set of forecast icons with a card image
var Icons = []string{
	"clear-day",
	"clear-night",
	"rain",
	"sleet",
	"hail",
	"snow",
	"wind",
	"fog",
	"cloudy",
	"partly-cloudy-day",
	"partly-cloudy-night",
	"thunderstorm",
	"tornado",
}

const (
	smallImageWidth = "720"
	largeImageWidth = "1200"
)

// IconKey returns the object key of an icon image in the icon bucket
func IconKey(icon string) string {
	return "images/" + icon + ".png"
}

// URLBuilder resizes and signs image URLs
type URLBuilder interface {
	BuildURL(path string, params map[string]string) string
}

// Image holds card image URLs
type Image struct {
	SmallURL string
	LargeURL string
}

// ImageSet resolves forecast icons to card images hosted in an S3 bucket
type ImageSet struct {
	bucket  string
	builder URLBuilder
}

// NewImageSet creates an image set. A nil builder serves the bucket URL unresized.
func NewImageSet(bucket string, builder URLBuilder) *ImageSet {
	return &ImageSet{
		bucket:  bucket,
		builder: builder,
	}
}

// Image returns the card image for the forecast's current icon, or nil when
// there is no current section, no bucket or the icon is unknown
func (s *ImageSet) Image(f *Forecast) *Image {
	if s == nil || s.bucket == "" || f == nil || f.Current == nil {
		return nil
	}
	if !slices.Contains(Icons, f.Current.Icon) {
		return nil
	}

	source := "https://s3.amazonaws.com/" + s.bucket + "/" + IconKey(f.Current.Icon)
	if s.builder == nil {
		return &Image{SmallURL: source, LargeURL: source}
	}

	return &Image{
		SmallURL: s.builder.BuildURL(source, map[string]string{"w": smallImageWidth}),
		LargeURL: s.builder.BuildURL(source, map[string]string{"w": largeImageWidth}),
	}
}
