package repository

// ArticleListFilter 查询文章列表的过滤条件
type ArticleListFilter struct {
	Page       int
	PageSize   int
	CategoryID *uint
	TagID      *uint
	Search     string
	Status     string
	IsPublic   *bool
	PublicOnly bool
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Search string
}

// TagListFilter 查询标签列表的过滤条件
type TagListFilter struct {
	Search string
}
