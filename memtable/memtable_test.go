package memtable

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) Log(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

type memtableTestSuite struct {
	suite.Suite

	logger *recordLogger
	mt     *Memtable
}

func (su *memtableTestSuite) SetupTest() {
	su.logger = &recordLogger{}
	su.mt = New(
		WithMaxKeyBytes(8),
		WithMaxValueBytes(16),
		WithSizeThreshold(32),
		WithLogger(su.logger),
	)
}

func (su *memtableTestSuite) Test_PutGet() {
	err := su.mt.Put([]byte("key"), []byte("value"))
	su.NoError(err)

	value, err := su.mt.Get([]byte("key"))
	su.NoError(err)
	su.Equal([]byte("value"), value)
	su.Equal(1, su.mt.Len())
	su.Equal(8, su.mt.Size())
}

func (su *memtableTestSuite) Test_Put_copies() {
	key, value := []byte("key"), []byte("value")
	su.Require().NoError(su.mt.Put(key, value))

	key[0], value[0] = 'x', 'x'
	got, err := su.mt.Get([]byte("key"))
	su.NoError(err)
	su.Equal([]byte("value"), got)
}

func (su *memtableTestSuite) Test_Put_overwrite() {
	su.Require().NoError(su.mt.Put([]byte("key"), []byte("value")))
	su.Require().NoError(su.mt.Put([]byte("key"), []byte("v")))

	value, err := su.mt.Get([]byte("key"))
	su.NoError(err)
	su.Equal([]byte("v"), value)
	su.Equal(1, su.mt.Len())
	su.Equal(4, su.mt.Size())
}

func (su *memtableTestSuite) Test_Put_invalid() {
	err := su.mt.Put(nil, []byte("value"))
	su.True(errors.Is(err, ErrEmptyKey))

	err = su.mt.Put([]byte("too-long-key"), []byte("value"))
	su.True(errors.Is(err, ErrKeyOrValueTooLong))

	err = su.mt.Put([]byte("key"), bytes.Repeat([]byte("v"), 17))
	su.True(errors.Is(err, ErrKeyOrValueTooLong))

	su.Equal(0, su.mt.Len())
	su.Equal(0, su.mt.Size())
}

func (su *memtableTestSuite) Test_Get_missing() {
	_, err := su.mt.Get([]byte("nope"))
	su.True(errors.Is(err, ErrKeyNotFound))
}

func (su *memtableTestSuite) Test_Delete() {
	su.Require().NoError(su.mt.Put([]byte("a"), []byte("1")))
	su.Require().NoError(su.mt.Put([]byte("b"), []byte("22")))

	su.mt.Delete([]byte("a"))
	su.mt.Delete([]byte("missing"))

	_, err := su.mt.Get([]byte("a"))
	su.True(errors.Is(err, ErrKeyNotFound))
	su.Equal(1, su.mt.Len())
	su.Equal(3, su.mt.Size())
}

func (su *memtableTestSuite) Test_ListKeys_ordered() {
	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		su.Require().NoError(su.mt.Put([]byte(k), []byte("x")))
	}

	keys := su.mt.ListKeys()
	got := make([]string, 0, len(keys))
	for _, k := range keys {
		got = append(got, string(k))
	}
	su.Equal([]string{"alpha", "bravo", "charlie", "delta"}, got)
}

func (su *memtableTestSuite) Test_returnedSlicesAreCopies() {
	for _, k := range []string{"c", "a", "b"} {
		su.Require().NoError(su.mt.Put([]byte(k), []byte(strings.ToUpper(k))))
	}

	keys := su.mt.ListKeys()
	keys[0][0] = 'z'
	value, err := su.mt.Get([]byte("b"))
	su.Require().NoError(err)
	value[0] = 'z'

	got, err := su.mt.Get([]byte("a"))
	su.NoError(err)
	su.Equal([]byte("A"), got)
	got, err = su.mt.Get([]byte("b"))
	su.NoError(err)
	su.Equal([]byte("B"), got)
	_, err = su.mt.Get([]byte("z"))
	su.True(errors.Is(err, ErrKeyNotFound))
	su.Equal([][]byte{[]byte("a"), []byte("b"), []byte("c")}, su.mt.ListKeys())
}

func (su *memtableTestSuite) Test_Range_stop() {
	for _, k := range []string{"c", "a", "b"} {
		su.Require().NoError(su.mt.Put([]byte(k), []byte(strings.ToUpper(k))))
	}

	var got []string
	su.mt.Range(func(key, value []byte) bool {
		got = append(got, string(key)+"="+string(value))
		return len(got) < 2
	})
	su.Equal([]string{"a=A", "b=B"}, got)
}

func (su *memtableTestSuite) Test_Full_loggedOnce() {
	su.False(su.mt.Full())
	su.Require().NoError(su.mt.Put([]byte("key1"), bytes.Repeat([]byte("v"), 12)))
	su.False(su.mt.Full())
	su.Require().NoError(su.mt.Put([]byte("key2"), bytes.Repeat([]byte("v"), 12)))
	su.True(su.mt.Full())
	su.Require().NoError(su.mt.Put([]byte("key3"), []byte("v")))
	su.True(su.mt.Full())
	su.Len(su.logger.lines, 1)

	su.mt.Delete([]byte("key2"))
	su.mt.Delete([]byte("key3"))
	su.False(su.mt.Full())
}

func (su *memtableTestSuite) Test_Full_overwriteBelowThreshold() {
	su.Require().NoError(su.mt.Put([]byte("key1"), bytes.Repeat([]byte("v"), 16)))
	su.Require().NoError(su.mt.Put([]byte("key2"), bytes.Repeat([]byte("v"), 12)))
	su.True(su.mt.Full())
	su.Len(su.logger.lines, 1)

	su.Require().NoError(su.mt.Put([]byte("key1"), []byte("v")))
	su.False(su.mt.Full())

	su.Require().NoError(su.mt.Put([]byte("key1"), bytes.Repeat([]byte("v"), 16)))
	su.True(su.mt.Full())
	su.Len(su.logger.lines, 2)
}

func (su *memtableTestSuite) Test_Reset() {
	su.Require().NoError(su.mt.Put([]byte("a"), []byte("1")))
	su.mt.Reset()

	su.Equal(0, su.mt.Len())
	su.Equal(0, su.mt.Size())
	su.Empty(su.mt.ListKeys())
}

func Test_Memtable(t *testing.T) {
	suite.Run(t, new(memtableTestSuite))
}

func Test_defaultOptions(t *testing.T) {
	opt := defaultOptions()

	assert.NotNil(t, opt)
	assert.Equal(t, maxKeySize, opt.maxKeyBytes)
	assert.Equal(t, maxValueSize, opt.maxValueBytes)
	assert.Equal(t, defaultSizeThreshold, opt.sizeThreshold)
	assert.NotNil(t, opt.logger)
}

func Test_WithLogger_nil(t *testing.T) {
	opt := defaultOptions()
	WithLogger(nil).apply(opt)

	assert.IsType(t, &nopLogger{}, opt.logger)
}

func Test_newFuncOption(t *testing.T) {
	opt := newFuncOption(func(o *options) {
		o.sizeThreshold = 100
	})

	assert.NotNil(t, opt)
	assert.NotNil(t, opt.fn)
}
