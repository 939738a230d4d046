package domain

// Article is the content piece submitted to the affiliate network for
// approval before ads may reference it.
type Article struct {
	Headline    string   `json:"headline"`
	Teaser      string   `json:"teaser"`
	BodyPhrases []string `json:"body_phrases"`
}

// Empty reports whether no article content has been produced yet.
func (a Article) Empty() bool {
	return a.Headline == "" && a.Teaser == "" && len(a.BodyPhrases) == 0
}
