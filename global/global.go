package global

// 进程级的默认值-只读，不放可变状态
import "time"

const Version = "1.0.0"

var (
	// 单次翻译请求的超时时间(外部服务)
	ProviderTimeout = 20 * time.Second
	// 数据库写入的超时时间
	StoreWriteTimeout = 2 * time.Second
	// 健康检查 ping 数据库的超时时间
	HealthTimeout = 2 * time.Second
	// 优雅关闭的等待时间
	ShutdownTimeout = 10 * time.Second
	// 运行时间的打印间隔
	MonitorInterval = 1 * time.Hour
)
