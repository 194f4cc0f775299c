package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce 最后一个文件事件之后需要保持安静的时间，编辑器保存时往往连续触发多次
const reloadDebounce = 100 * time.Millisecond

// ConfigWatcher 监听配置文件变化
//
// fsnotify 事件在后台 goroutine 中处理，Events 只传递发生变化的文件路径；
// 调用方在游戏循环里非阻塞地读取 Events，再在游戏 goroutine 上重新加载配置。
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	target  string

	Events chan string
	Errors chan error

	closeCh chan struct{}
	once    sync.Once
}

// NewConfigWatcher 监听 path 所在目录，只转发 path 本身的变化
// 监听目录而不是文件：很多编辑器保存时会先写临时文件再重命名
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	cw := &ConfigWatcher{
		watcher: w,
		target:  abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close 停止监听，可重复调用
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
	})
	return err
}

// Poll 非阻塞地检查是否有待处理的变化，多个事件合并为一次
func (cw *ConfigWatcher) Poll() bool {
	changed := false
	for {
		select {
		case <-cw.Events:
			changed = true
		default:
			return changed
		}
	}
}

func (cw *ConfigWatcher) run() {
	// 尾沿去抖：每个相关事件都重新计时，安静 reloadDebounce 之后才通知
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	var pending string
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !cw.isRelevant(event) {
				continue
			}
			pending = event.Name
			timer.Reset(reloadDebounce)
		case <-timer.C:
			select {
			case cw.Events <- pending:
			default:
				// 缓冲已满，说明已有待处理的重新加载
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case cw.Errors <- err:
			default:
			}
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ConfigWatcher) isRelevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return abs == cw.target
}
