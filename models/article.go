package models

import "strings"

const tagSeparator = ","

type Article struct {
	Base
	AuthorID     string  `json:"author_id" gorm:"type:varchar(36);not null;index"`
	Author       *Author `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Title        string  `json:"title" gorm:"not null"`
	Description  string  `json:"description"`
	Content      string  `json:"content" gorm:"type:text"`
	ImageAssetID string  `json:"-"`
	ImageURL     string  `json:"image_url"`
	Tags         *string `json:"-" gorm:"type:text"`
}

func (a *Article) SetImage(assetID, url string) {
	a.ImageAssetID = assetID
	a.ImageURL = url
}

// TagList splits the stored tags. A NULL column yields nil.
func (a *Article) TagList() []string {
	if a.Tags == nil || *a.Tags == "" {
		return nil
	}
	return strings.Split(*a.Tags, tagSeparator)
}

// JoinTags normalizes tags into the stored form: trimmed, de-duplicated in
// first-seen order, separator stripped. No usable tag returns nil, never "".
func JoinTags(tags []string) *string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(strings.ReplaceAll(t, tagSeparator, " "))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	joined := strings.Join(out, tagSeparator)
	return &joined
}
