// Package receive holds the state of the receive screen: the account address
// and whether it was just copied to the clipboard.
package receive

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultCopyResetAfter = 2 * time.Second

// Clipboard 剪贴板接口（由展示层提供）
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// MemoryClipboard keeps the last written text in memory. Used by the HTTP
// server and the CLI, which have no system clipboard.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *MemoryClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// View 接收页面的展示快照
type View struct {
	Address string `json:"address"`
	Copied  bool   `json:"copied"`
}

// Screen 接收页面状态
type Screen struct {
	mu         sync.Mutex
	address    string
	clipboard  Clipboard
	resetAfter time.Duration
	copied     bool
	timer      *time.Timer
	// gen identifies the latest copy; resets scheduled by earlier copies are ignored.
	gen       uint64
	closed    bool
	afterFunc func(time.Duration, func()) *time.Timer
}

// Option 接收页面可选项
type Option func(*Screen)

// WithAfterFunc replaces time.AfterFunc for scheduling the copied flag reset.
func WithAfterFunc(fn func(time.Duration, func()) *time.Timer) Option {
	return func(s *Screen) {
		s.afterFunc = fn
	}
}

// New 创建接收页面；resetAfter <= 0 时使用 DefaultCopyResetAfter
func New(address string, clipboard Clipboard, resetAfter time.Duration, opts ...Option) *Screen {
	if resetAfter <= 0 {
		resetAfter = DefaultCopyResetAfter
	}
	s := &Screen{
		address:    address,
		clipboard:  clipboard,
		resetAfter: resetAfter,
		afterFunc:  time.AfterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Copy 将地址写入剪贴板并置 Copied；重复复制会延长重置时间
func (s *Screen) Copy(ctx context.Context) error {
	if err := s.clipboard.WriteText(ctx, s.address); err != nil {
		return errors.Wrap(err, "failed to copy address")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.copied = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = s.afterFunc(s.resetAfter, func() { s.reset(gen) })

	log.Debug().Str("address", s.address).Msg("Address copied")

	return nil
}

func (s *Screen) reset(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.copied = false
	s.timer = nil
}

func (s *Screen) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{Address: s.address, Copied: s.copied}
}

// Close 停止重置计时器
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.copied = false
	s.closed = true
}
