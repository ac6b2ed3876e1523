// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
)

// OpenDatabase opens the leveldb database in [dir], or an in-memory database
// when [dir] is empty.
func OpenDatabase(dir string) (database.Database, error) {
	if len(dir) == 0 {
		log.Warn("no database directory configured, state will not survive a restart")
		return memdb.New(), nil
	}
	db, err := leveldb.New(dir, nil, logging.NoLog{})
	if err != nil {
		return nil, err
	}
	log.Info("opened database", "dir", dir)
	return db, nil
}
