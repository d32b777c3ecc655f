package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TestIsConfigEvent 只关心目标文件的内容变化
func TestIsConfigEvent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scene.yaml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"写入目标", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"改名到目标", fsnotify.Event{Name: target, Op: fsnotify.Rename}, true},
		{"创建目标", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"修改权限", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"其他文件", fsnotify.Event{Name: filepath.Join(dir, "other.yaml"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConfigEvent(tt.event, target); got != tt.want {
				t.Errorf("isConfigEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestWatcher_Poll 修改文件后 Poll 能取到事件
func TestWatcher_Poll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("lighthouses: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if _, ok := w.Poll(); ok {
		t.Fatal("未修改时不应有事件")
	}

	if err := os.WriteFile(path, []byte("lighthouses: []\n# edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if name, ok := w.Poll(); ok {
			if name != w.target {
				t.Errorf("期望 %s, got %s", w.target, name)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("超时未收到变化事件")
}

// TestWatcher_PollError 错误通道按顺序非阻塞取出
func TestWatcher_PollError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if _, ok := w.PollError(); ok {
		t.Fatal("没有错误时不应返回")
	}

	want := errors.New("queue overflow")
	w.Errors <- want
	got, ok := w.PollError()
	if !ok || got != want {
		t.Errorf("期望取出 %v, got %v (ok=%v)", want, got, ok)
	}
	if _, ok := w.PollError(); ok {
		t.Error("错误取出后通道应为空")
	}
}

// TestWatcher_CloseTwice 重复关闭不报错
func TestWatcher_CloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("第一次关闭: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("第二次关闭应为空操作: %v", err)
	}
}
