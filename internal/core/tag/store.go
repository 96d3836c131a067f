// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package tag

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetTagByID(context context.Context, id int) (*Tag, error)
	CreateCategory(context context.Context, category *Category) error
	CreateTag(context context.Context, tag *Tag) error
	SetCategoryName(context context.Context, categoryID, languageID int, name string) error
	SetTagName(context context.Context, tagID, languageID int, name string) error
	DeleteTag(context context.Context, id int) error
}
