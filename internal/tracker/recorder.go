package tracker

import (
	"context"
	"sync"
	"time"

	"editorial-platform/internal/model"
	"editorial-platform/internal/store"

	"go.uber.org/zap"
)

// Writer 点击记录的落盘目标，*store.Store 满足该接口
type Writer interface {
	Create(ctx context.Context, collection string, doc store.Document) (string, error)
}

// Recorder 以尽力而为的方式异步写入点击记录
//
// Record 从不阻塞调用方；缓冲区满时直接丢弃事件。写入失败只记录日志，不重试。
type Recorder struct {
	writer  Writer
	events  chan *model.Click
	workers int
	timeout time.Duration
	logger  *zap.SugaredLogger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewRecorder 创建点击记录器，需调用 Start 启动 worker
func NewRecorder(writer Writer, bufferSize, workers int, timeout time.Duration, logger *zap.SugaredLogger) *Recorder {
	if workers <= 0 {
		workers = 1
	}
	if bufferSize < 0 {
		bufferSize = 0
	}
	if timeout <= 0 {
		timeout = store.DefaultTimeout
	}
	return &Recorder{
		writer:  writer,
		events:  make(chan *model.Click, bufferSize),
		workers: workers,
		timeout: timeout,
		logger:  logger.Named("click_tracker"),
	}
}

// Start 启动 worker 池
func (r *Recorder) Start() {
	r.logger.Infof("启动 %d 个点击记录 worker，缓冲区 %d", r.workers, cap(r.events))
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.work()
	}
}

// Stop 停止接收新事件，并等待已排队的事件写完
func (r *Recorder) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.events)
	r.mu.Unlock()

	r.wg.Wait()
	r.logger.Info("点击记录 worker 已全部退出")
}

// Record 提交一条点击记录，返回是否成功入队
func (r *Recorder) Record(click *model.Click) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		r.logger.Warnw("记录器已停止，丢弃点击", "slug", click.LinkSlug)
		return false
	}

	select {
	case r.events <- click:
		return true
	default:
		r.logger.Warnw("点击队列已满，丢弃点击", "slug", click.LinkSlug)
		return false
	}
}

func (r *Recorder) work() {
	defer r.wg.Done()
	for click := range r.events {
		r.write(click)
	}
}

func (r *Recorder) write(click *model.Click) {
	// 请求上下文在跳转完成后即被取消，这里使用独立的上下文
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if _, err := r.writer.Create(ctx, model.ClickCollection, click); err != nil {
		r.logger.Errorw("点击记录写入失败",
			"slug", click.LinkSlug,
			"ip", click.IP,
			"error", err,
		)
		return
	}
	r.logger.Debugw("点击已记录", "slug", click.LinkSlug)
}
