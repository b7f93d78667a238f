// Package store keeps a history of sort runs in MySQL.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"xorm.io/xorm"
	"xorm.io/xorm/names"
)

// Run is one recorded invocation of a sort algorithm.
type Run struct {
	Id          int64     `xorm:"pk autoincr"`
	Algo        string    `xorm:"varchar(16) index notnull"`
	Input       []int     `xorm:"blob notnull"`
	Output      []int     `xorm:"blob notnull"`
	Comparisons int64     `xorm:"notnull"`
	Swaps       int64     `xorm:"notnull"`
	Elapsed     int64     `xorm:"notnull"` // nanoseconds
	Created     time.Time `xorm:"created"`
}

type Store struct {
	engine *xorm.Engine
}

// ParseDSN turns a META-URL such as "mysql://user:pass@(127.0.0.1:3306)/db"
// into a go-sql-driver DSN. Plain driver DSNs are returned unchanged.
func ParseDSN(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty meta url")
	}
	p := strings.Index(url, "://")
	if p < 0 {
		return url, nil
	}
	if scheme := url[:p]; scheme != "mysql" {
		return "", fmt.Errorf("unsupported scheme %q", scheme)
	}
	dsn := url[p+3:]
	if strings.Contains(dsn, "@(") {
		dsn = strings.Replace(dsn, "@(", "@tcp(", 1)
	} else if strings.HasPrefix(dsn, "(") {
		dsn = "tcp" + dsn
	}
	if !strings.Contains(dsn, "parseTime=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "parseTime=true"
	}
	return dsn, nil
}

// Open connects to the database behind url and creates the run table if needed.
func Open(url string) (*Store, error) {
	dsn, err := ParseDSN(url)
	if err != nil {
		return nil, err
	}
	return newStore("mysql", dsn)
}

func newStore(driver, dsn string) (*Store, error) {
	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if err = engine.Ping(); err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("connect ping failed: %w", err)
	}

	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), "sort_"))

	if err = engine.Sync2(new(Run)); err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("sync table: %w", err)
	}
	return &Store{engine: engine}, nil
}

// Record inserts r and fills in its id.
func (s *Store) Record(ctx context.Context, r *Run) error {
	_, err := s.engine.Context(ctx).Insert(r)
	return err
}

// Recent returns up to limit runs, newest first. An empty algo matches all.
func (s *Store) Recent(ctx context.Context, algo string, limit int) ([]Run, error) {
	sess := s.engine.Context(ctx).Desc("id")
	if algo != "" {
		sess = sess.Where("algo = ?", algo)
	}
	if limit > 0 {
		sess = sess.Limit(limit)
	}
	var runs []Run
	if err := sess.Find(&runs); err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}
