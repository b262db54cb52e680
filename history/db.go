package history

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/minio/sha256-simd"
	xdr "github.com/nullstyle/go-xdr/xdr3"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/spacemeshos/radix/logging"
	"github.com/spacemeshos/radix/notation"
)

var ErrNotFound = leveldb.ErrNotFound

var recordPrefix = []byte("conversion/")

// Record is a stored conversion.
type Record struct {
	System      uint32
	Digits      string
	Binary      string
	Octal       string
	Decimal     string
	Hexadecimal string

	// Count is the number of times the value was converted.
	Count     uint64
	FirstSeen int64
	LastSeen  int64
}

func (r *Record) NotationSystem() notation.System {
	return notation.System(r.System)
}

func (r *Record) Result() *notation.Result {
	return &notation.Result{
		System:      r.NotationSystem(),
		Digits:      r.Digits,
		Binary:      r.Binary,
		Octal:       r.Octal,
		Decimal:     r.Decimal,
		Hexadecimal: r.Hexadecimal,
	}
}

type Database struct {
	db  *leveldb.DB
	now func() time.Time
}

func Open(dbPath string) (*Database, error) {
	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database @ %s: %w", dbPath, err)
	}
	return &Database{db: db, now: time.Now}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

// recordKey identifies a value by its source system and decimal rendering,
// so inputs differing only in letter case or leading zeros share a record.
func recordKey(system notation.System, decimal string) []byte {
	digest := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", system, decimal)))
	return append(append([]byte{}, recordPrefix...), digest[:]...)
}

// Save records a conversion, bumping the counter of an existing record.
func (d *Database) Save(ctx context.Context, res *notation.Result) error {
	key := recordKey(res.System, res.Decimal)
	trans, err := d.db.OpenTransaction()
	if err != nil {
		return err
	}

	now := d.now().UnixNano()
	record := Record{FirstSeen: now}
	current, err := trans.Get(key, nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		logging.FromContext(ctx).Debug("new history record", zap.Stringer("system", res.System), zap.String("digits", res.Digits))
	case err != nil:
		trans.Discard()
		return fmt.Errorf("querying history record: %w", err)
	default:
		if _, err := xdr.Unmarshal(bytes.NewReader(current), &record); err != nil {
			trans.Discard()
			return fmt.Errorf("failed to deserialize: %w", err)
		}
	}

	record.System = uint32(res.System)
	record.Digits = strings.ToLower(res.Digits)
	record.Binary = res.Binary
	record.Octal = res.Octal
	record.Decimal = res.Decimal
	record.Hexadecimal = res.Hexadecimal
	record.Count++
	record.LastSeen = now

	serialized, err := serializeRecord(&record)
	if err != nil {
		trans.Discard()
		return err
	}
	if err := trans.Put(key, serialized, &opt.WriteOptions{Sync: true}); err != nil {
		trans.Discard()
		return fmt.Errorf("storing history record: %w", err)
	}
	return trans.Commit()
}

// Get returns the record of a conversion result.
func (d *Database) Get(ctx context.Context, res *notation.Result) (*Record, error) {
	data, err := d.db.Get(recordKey(res.System, res.Decimal), nil)
	if err != nil {
		return nil, fmt.Errorf("get history record for %s from DB: %w", res.Digits, err)
	}
	record := &Record{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), record); err != nil {
		return nil, fmt.Errorf("failed to deserialize: %w", err)
	}
	return record, nil
}

// List returns all records ordered by system and then by value.
func (d *Database) List(ctx context.Context) ([]Record, error) {
	iter := d.db.NewIterator(util.BytesPrefix(recordPrefix), nil)
	defer iter.Release()

	var records []Record
	for iter.Next() {
		var record Record
		if _, err := xdr.Unmarshal(bytes.NewReader(iter.Value()), &record); err != nil {
			return nil, fmt.Errorf("failed to deserialize %x: %w", iter.Key(), err)
		}
		records = append(records, record)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	slices.SortFunc(records, func(a, b Record) bool {
		if a.System != b.System {
			return a.System < b.System
		}
		if len(a.Decimal) != len(b.Decimal) {
			return len(a.Decimal) < len(b.Decimal)
		}
		return a.Decimal < b.Decimal
	})
	return records, nil
}

func serializeRecord(record *Record) ([]byte, error) {
	var dataBuf bytes.Buffer
	if _, err := xdr.Marshal(&dataBuf, record); err != nil {
		return nil, fmt.Errorf("serialization failure: %w", err)
	}
	return dataBuf.Bytes(), nil
}
