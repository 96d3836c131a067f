// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package fragment

import "context"

type Repository interface {
	GetFragmentByID(context context.Context, id string) (*Fragment, error)
	CreateFragment(context context.Context, fragment *Fragment) error
	UpdateFragment(context context.Context, fragment *Fragment) error
	SoftDeleteFragment(context context.Context, id string) error
	SetFragmentTags(context context.Context, fragmentID string, tagIDs []int) error
}
