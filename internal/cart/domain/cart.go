package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CartItem adalah snapshot produk saat dimasukkan ke cart. Price dan
// Quantity sengaja bertipe longgar: cart.json bisa diedit tangan atau
// berasal dari write yang setengah jadi, jadi nilai yang tersimpan belum
// tentu angka. Validasi baru dilakukan saat view/checkout, bukan saat decode.
type CartItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    interface{} `json:"price"`
	Quantity interface{} `json:"quantity"`
}

// UnitPrice mengembalikan harga satuan sebagai decimal. Error jika nilai
// tersimpan bukan angka atau negatif.
func (it CartItem) UnitPrice() (decimal.Decimal, error) {
	var price float64
	switch v := it.Price.(type) {
	case float64:
		price = v
	case int:
		price = float64(v)
	default:
		return decimal.Zero, fmt.Errorf("invalid price of %s in cart: %v", it.Name, it.Price)
	}
	if price < 0 {
		return decimal.Zero, fmt.Errorf("invalid price of %s in cart: %v", it.Name, it.Price)
	}
	return decimal.NewFromFloat(price), nil
}

// Count mengembalikan kuantitas sebagai int. Error jika bukan bilangan
// bulat positif.
func (it CartItem) Count() (int, error) {
	n, ok := it.numericQuantity()
	if !ok || n <= 0 {
		return 0, fmt.Errorf("invalid quantity of %s in cart: %v", it.Name, it.Quantity)
	}
	return n, nil
}

// NumericQuantity membaca kuantitas apa adanya, tanpa cek positif.
// Dipakai saat menambah kuantitas item yang sudah ada di cart.
func (it CartItem) NumericQuantity() (int, bool) {
	return it.numericQuantity()
}

func (it CartItem) numericQuantity() (int, bool) {
	switch v := it.Quantity.(type) {
	case int:
		return v, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// LineTotal = harga satuan x kuantitas. Hanya valid setelah item lolos
// validasi.
func (it CartItem) LineTotal() (decimal.Decimal, error) {
	price, err := it.UnitPrice()
	if err != nil {
		return decimal.Zero, err
	}
	count, err := it.Count()
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(decimal.NewFromInt(int64(count))), nil
}

// ValidationError mengumpulkan SEMUA pelanggaran data di cart sekaligus,
// bukan hanya yang pertama, supaya masalah kualitas data terlihat dalam
// satu kali jalan.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// ValidateItems memeriksa setiap item: quantity harus bilangan bulat
// positif, price harus angka non-negatif.
func ValidateItems(items []CartItem) error {
	var problems []string
	for _, it := range items {
		if _, err := it.Count(); err != nil {
			problems = append(problems, err.Error())
		}
		if _, err := it.UnitPrice(); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Total menjumlahkan price x quantity seluruh item. Caller harus sudah
// menjalankan ValidateItems.
func Total(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		line, err := it.LineTotal()
		if err != nil {
			continue
		}
		total = total.Add(line)
	}
	return total.Round(2)
}
