package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce 同一文件两次事件之间的最小间隔
// 编辑器保存时常常连续触发 Write+Rename+Create
const watchDebounce = 100 * time.Millisecond

// Watcher 监听场景配置文件变化（调试热重载）
//
// fsnotify 在后台 goroutine 中运行，变化的文件路径通过带缓冲的 Events 通道
// 交给游戏循环；游戏循环每帧非阻塞地读取，不会在帧内等待。
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher 监听指定配置文件
// 实际监听文件所在目录，兼容"写临时文件再改名"的保存方式。
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		target:  abs,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	log.Printf("[ConfigWatcher] Watching %s", abs)
	return watcher, nil
}

// Close 停止监听，可重复调用
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll 非阻塞地取出一个变化事件
func (w *Watcher) Poll() (string, bool) {
	select {
	case name := <-w.Events:
		return name, true
	default:
		return "", false
	}
}

// PollError 非阻塞地取出一个监听错误
func (w *Watcher) PollError() (error, bool) {
	select {
	case err := <-w.Errors:
		return err, true
	default:
		return nil, false
	}
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isConfigEvent(event, w.target) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < watchDebounce {
				continue
			}
			last = now
			select {
			case w.Events <- w.target:
			default:
				// 游戏循环尚未消费上一次事件，合并即可
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// isConfigEvent 事件是否针对目标文件的内容变化
func isConfigEvent(event fsnotify.Event, target string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return abs == target
}
