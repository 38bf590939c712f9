package config

// SafeErrorMessage 根据运行模式决定返回给客户端的错误信息
// debug 模式（或配置未初始化的开发场景）返回真实错误，release 模式只返回兜底文案，避免泄露内部细节
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig == nil || GlobalConfig.Server.Mode == "debug" {
		return err.Error()
	}
	return fallback
}
