// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/registryvm/chain"
)

func (vm *VM) addActivity(e *chain.Event) {
	vm.activityCacheLock.Lock()
	defer vm.activityCacheLock.Unlock()

	vm.activityCache[vm.activityCacheCursor%uint64(len(vm.activityCache))] = e
	vm.activityCacheCursor++
}

// RecentActivity returns the most recently committed events, newest first.
func (vm *VM) RecentActivity() []*chain.Event {
	vm.activityCacheLock.RLock()
	defer vm.activityCacheLock.RUnlock()

	size := uint64(len(vm.activityCache))
	n := vm.activityCacheCursor
	if n > size {
		n = size
	}
	activity := make([]*chain.Event, 0, n)
	for i := uint64(1); i <= n; i++ {
		activity = append(activity, vm.activityCache[(vm.activityCacheCursor-i)%size])
	}
	return activity
}
