package domain

// Group is a named category posts can belong to. Groups are created by an
// administrator (see cmd/tools/create-group) and never change once posts
// reference them.
type Group struct {
	Id          GroupId
	Title       string
	Slug        GroupSlug
	Description string
}
