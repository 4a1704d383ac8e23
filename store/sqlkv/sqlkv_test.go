package sqlkv

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"

	"lendbook/core"
	"lendbook/store/state"

	"github.com/stretchr/testify/assert"
)

func TestKeyColumnFitsLongestKey(t *testing.T) {
	field, ok := reflect.TypeOf(core.KVEntry{}).FieldByName("StoreKey")
	assert.True(t, ok)
	assert.Contains(t, field.Tag.Get("sql"), fmt.Sprintf("size:%d", keyColumnSize))

	longest := bytes.Repeat([]byte{0xff}, state.MaxKeyLength)
	assert.LessOrEqual(t, len(storeKey(longest)), keyColumnSize)
}

func TestStoreKeyKeepsOrder(t *testing.T) {
	keys := [][]byte{
		[]byte("bl/\x00\x01"),
		[]byte("bl/"),
		[]byte("al/\xff"),
		[]byte("bl/\x00"),
		{0x00},
	}

	encoded := make([]string, len(keys))
	for i, k := range keys {
		encoded[i] = storeKey(k)
	}

	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })
	sort.Strings(encoded)

	for i, k := range keys {
		assert.Equal(t, storeKey(k), encoded[i])
	}

	assert.True(t, strings.HasPrefix(storeKey([]byte("bl/\x00\x01")), storeKey([]byte("bl/"))))
}
