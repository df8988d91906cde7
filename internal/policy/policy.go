// Package policy decides what the current user may do. A nil user means the
// request is anonymous. The policy never writes a response itself; handlers
// choose between rendering, redirect-to-login and redirect-to-detail.
package policy

import "github.com/quill-dev/quill/internal/domain"

func CanCreatePost(user *domain.User) bool {
	return user != nil
}

func CanEditPost(user *domain.User, post *domain.Post) bool {
	return user != nil && user.Id == post.Author.Id
}
