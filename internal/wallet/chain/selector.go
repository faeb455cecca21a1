package chain

import (
	"sync"

	"github.com/pkg/errors"
)

// Selector 保存当前选中的网络（首页网络切换）
type Selector struct {
	mu       sync.RWMutex
	service  Service
	selected *Network
}

// NewSelector 创建网络选择器，initial 为默认网络名称
func NewSelector(service Service, initial string) (*Selector, error) {
	s := &Selector{service: service}
	if err := s.Select(initial); err != nil {
		return nil, err
	}

	return s, nil
}

// Select 切换网络；非 EVM 或未配置 RPC 的网络不能被选中
func (s *Selector) Select(name string) error {
	network, err := s.service.GetChainByName(name)
	if err != nil {
		return err
	}

	if !network.IsActive() {
		return errors.Wrapf(ErrUnsupportedNetwork, "name=%s", network.Name)
	}

	s.mu.Lock()
	s.selected = network
	s.mu.Unlock()

	return nil
}

// Selected 返回当前选中的网络
func (s *Selector) Selected() *Network {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selected
}
