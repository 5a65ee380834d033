package service

import "errors"

// 业务层哨兵错误，由 HTTP 层统一映射为响应码。
var (
	ErrNotFound           = errors.New("资源不存在")
	ErrForbidden          = errors.New("无权访问该资源")
	ErrNameRequired       = errors.New("名称不能为空")
	ErrNameExists         = errors.New("名称已存在")
	ErrTitleRequired      = errors.New("标题不能为空")
	ErrTitleTooLong       = errors.New("标题长度超出限制")
	ErrContentRequired    = errors.New("内容不能为空")
	ErrInvalidStatus      = errors.New("无效的文章状态")
	ErrCategoryInvalid    = errors.New("分类不存在")
	ErrTagInvalid         = errors.New("存在无效的标签")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidPassword    = errors.New("原密码错误")
	ErrPasswordTooShort   = errors.New("新密码长度不足")
	ErrCaptchaRequired    = errors.New("需要验证码")
	ErrCaptchaInvalid     = errors.New("验证码错误")
	ErrCaptchaUnavailable = errors.New("验证码服务不可用")
)
