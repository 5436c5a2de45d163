// Package badgerstore backs docstore.Store with an embedded badger
// key-value database, for deployments that run the Interval Driver against
// a local on-disk index rather than an external document store.
package badgerstore

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/ahratul/inx-chronicle/docstore"
	"github.com/ahratul/inx-chronicle/ledger"
)

const (
	txPrefix      = "tx/"
	outputPrefix  = "out/"
	balancePrefix = "bal/"
)

// Store is a badger-backed docstore.Store. Transactions are keyed by their
// timestamp followed by a per-timestamp sequence number, so records sharing
// a timestamp are all kept and TransactionsInRange can do a prefix-bounded
// key scan instead of a full table scan.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral in-memory badger database: a genuine
// Store backed by the same engine as Open, for demos and tests that want
// real query behavior without touching disk.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: open in-memory: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func txKey(t time.Time) []byte {
	buf := make([]byte, len(txPrefix)+8)
	copy(buf, txPrefix)
	binary.BigEndian.PutUint64(buf[len(txPrefix):], uint64(t.UnixNano()))
	return buf
}

// PutTransaction indexes a record at timestamp t, for fixture loading.
func (s *Store) PutTransaction(t time.Time, rec docstore.TransactionRecord) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		base := txKey(t)
		key := make([]byte, len(base)+4)
		copy(key, base)
		for seq := uint32(0); ; seq++ {
			binary.BigEndian.PutUint32(key[len(base):], seq)
			_, err := txn.Get(key)
			if err == badger.ErrKeyNotFound {
				return txn.Set(key, val)
			}
			if err != nil {
				return err
			}
		}
	})
}

func (s *Store) TransactionsInRange(_ context.Context, start, end time.Time) ([]docstore.TransactionRecord, error) {
	var out []docstore.TransactionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(txPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		lower := txKey(start)
		for it.Seek(lower); it.ValidForPrefix([]byte(txPrefix)); it.Next() {
			key := it.Item().KeyCopy(nil)
			if bytes.Compare(key, txKey(end)) >= 0 {
				break
			}
			var rec docstore.TransactionRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badgerstore: transactions in range: %w", err)
	}
	return out, nil
}

func (s *Store) OutputsAtLedgerIndex(_ context.Context, ledgerIndex ledger.MilestoneIndex, query docstore.IndexerQuery) ([]ledger.LedgerOutput, error) {
	var out []ledger.LedgerOutput
	prefix := fmt.Sprintf("%s%d/", outputPrefix, ledgerIndex)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			var lo ledger.LedgerOutput
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &lo)
			}); err != nil {
				return err
			}
			if query.Address != nil && (lo.Output.OwningAddress == nil || *lo.Output.OwningAddress != *query.Address) {
				continue
			}
			out = append(out, lo)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badgerstore: outputs at ledger index: %w", err)
	}
	return out, nil
}

func (s *Store) BalanceOfAddress(_ context.Context, addr ledger.Address, ledgerIndex ledger.MilestoneIndex) (uint64, error) {
	key := fmt.Sprintf("%s%d/%s", balancePrefix, ledgerIndex, addr.String())
	var balance uint64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			balance = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("badgerstore: balance of address: %w", err)
	}
	return balance, nil
}

// PutBalance indexes addr's balance at ledgerIndex, for fixture loading.
func (s *Store) PutBalance(ledgerIndex ledger.MilestoneIndex, addr ledger.Address, balance uint64) error {
	key := fmt.Sprintf("%s%d/%s", balancePrefix, ledgerIndex, addr.String())
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, balance)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}
