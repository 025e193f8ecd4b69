// Package refnum 生成单据的业务参考号。
//
// 参考号只求可读、够随机，不做全局唯一性保证，入库前也不查重。
package refnum

import (
	"fmt"
	"math/rand"
	"strings"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// 各单据前缀
const (
	PrefixReceiving     = "REC"
	PrefixInventory     = "REF"
	PrefixPurchaseOrder = "REF"
	PrefixTransfer      = "TRANSFER-ID"
	PrefixStockOut      = "STOCKOUT-ID"
	PrefixReorder       = "REORDER-ID"
	PrefixSupplier      = "SUP"
)

// New 返回 PREFIX-XXXXXX-N 形式的参考号，
// 其中 XXXXXX 为6位大写 base36 随机串，N 为 0..999。
func New(prefix string) string {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteByte(base36[rand.Intn(len(base36))])
	}
	return fmt.Sprintf("%s-%s-%d", prefix, sb.String(), rand.Intn(1000))
}
