package constants

// 文章状态常量
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// 文章标题长度上限
const ArticleTitleMaxLength = 200

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskDashboardRefresh = "dashboard:refresh"
)
