package entity

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media is an uploaded image or video embedded in tour and review documents.
type Media struct {
	URL  string    `bson:"url" json:"url"`
	Type MediaType `bson:"type" json:"type"`
}
