package service

// Visibility 请求方可见级别
type Visibility int

const (
	// VisibilityPublic 匿名或凭证无效的访客，仅可见公开且已发布的内容
	VisibilityPublic Visibility = iota
	// VisibilityOperator 持有效凭证的管理员，可见全部内容
	VisibilityOperator
)

// CanSeeHidden 是否可见未公开或未发布的内容
func (v Visibility) CanSeeHidden() bool {
	return v == VisibilityOperator
}
