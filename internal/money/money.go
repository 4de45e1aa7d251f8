// Package money содержит денежные типы с точной десятичной арифметикой.
// Все суммы и проценты считаются через shopspring/decimal — никогда float64.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyScale — число знаков после запятой для денежных сумм
const CurrencyScale = 2

// Ошибки конструирования денежных значений
var (
	ErrInvalidAmount  = errors.New("invalid money amount")
	ErrInvalidPercent = errors.New("invalid percent value")
)

var hundred = decimal.NewFromInt(100)

// Amount представляет неотрицательную денежную сумму.
// Неизменяемый value type: все операции возвращают новое значение.
// Промежуточные результаты процентной арифметики могут нести больше
// двух знаков — перед сохранением сумма округляется через Round.
type Amount struct {
	dec decimal.Decimal
}

// ParseAmount создает сумму из десятичной строки.
// Отрицательные значения и значения точнее CurrencyScale отклоняются.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: negative value %q", ErrInvalidAmount, s)
	}
	if d.Exponent() < -CurrencyScale {
		return Amount{}, fmt.Errorf("%w: %q exceeds scale %d", ErrInvalidAmount, s, CurrencyScale)
	}
	return Amount{dec: d}, nil
}

// FromMinorUnits создает сумму из целого числа минорных единиц (копеек/центов)
func FromMinorUnits(units int64) (Amount, error) {
	if units < 0 {
		return Amount{}, fmt.Errorf("%w: negative minor units %d", ErrInvalidAmount, units)
	}
	return Amount{dec: decimal.New(units, -CurrencyScale)}, nil
}

// MustParseAmount — вариант ParseAmount для констант и тестов, паникует при ошибке
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Zero возвращает нулевую сумму
func Zero() Amount {
	return Amount{dec: decimal.Zero}
}

// Add возвращает сумму двух значений
func (a Amount) Add(other Amount) Amount {
	return Amount{dec: a.dec.Add(other.dec)}
}

// Sub возвращает разность. Результат может быть отрицательным —
// вызывающая сторона обязана проверить IsNegative перед использованием.
func (a Amount) Sub(other Amount) Amount {
	return Amount{dec: a.dec.Sub(other.dec)}
}

// MulInt возвращает сумму, умноженную на целое (количество единиц товара)
func (a Amount) MulInt(n int32) Amount {
	return Amount{dec: a.dec.Mul(decimal.NewFromInt32(n))}
}

// Round округляет до CurrencyScale знаков банковским округлением
// (round-half-even) — детерминированно для любой последовательности операций
func (a Amount) Round() Amount {
	return Amount{dec: a.dec.RoundBank(CurrencyScale)}
}

// IsNegative сообщает, отрицательна ли сумма
func (a Amount) IsNegative() bool {
	return a.dec.IsNegative()
}

// IsZero сообщает, равна ли сумма нулю
func (a Amount) IsZero() bool {
	return a.dec.IsZero()
}

// Equal сравнивает суммы по значению (100 == 100.00)
func (a Amount) Equal(other Amount) bool {
	return a.dec.Equal(other.dec)
}

// LessThan сообщает, меньше ли сумма другой
func (a Amount) LessThan(other Amount) bool {
	return a.dec.LessThan(other.dec)
}

// MinorUnits возвращает сумму в минорных единицах после округления
func (a Amount) MinorUnits() int64 {
	return a.dec.RoundBank(CurrencyScale).Shift(CurrencyScale).IntPart()
}

// String возвращает сумму с фиксированными двумя знаками
func (a Amount) String() string {
	return a.dec.StringFixed(CurrencyScale)
}

// MarshalJSON сериализует сумму как десятичную строку
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.dec.RoundBank(CurrencyScale).MarshalJSON()
}

// UnmarshalJSON десериализует сумму из десятичной строки или числа
func (a *Amount) UnmarshalJSON(data []byte) error {
	if err := a.dec.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	if a.dec.IsNegative() {
		return fmt.Errorf("%w: negative value %s", ErrInvalidAmount, data)
	}
	return nil
}

// Scan реализует sql.Scanner для чтения из numeric колонок
func (a *Amount) Scan(value any) error {
	return a.dec.Scan(value)
}

// Value реализует driver.Valuer для записи в numeric колонки
func (a Amount) Value() (any, error) {
	v, err := a.dec.Value()
	return v, err
}

// Percent представляет процент в диапазоне [0, 100]
type Percent struct {
	dec decimal.Decimal
}

// ParsePercent создает процент из десятичной строки, проверяя диапазон [0, 100]
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, fmt.Errorf("%w: %q", ErrInvalidPercent, s)
	}
	if d.IsNegative() || d.GreaterThan(hundred) {
		return Percent{}, fmt.Errorf("%w: %q out of [0, 100]", ErrInvalidPercent, s)
	}
	return Percent{dec: d}, nil
}

// PercentFromInt создает процент из целого числа
func PercentFromInt(n int64) (Percent, error) {
	return ParsePercent(decimal.NewFromInt(n).String())
}

// MustParsePercent — вариант ParsePercent для констант и тестов, паникует при ошибке
func MustParsePercent(s string) Percent {
	p, err := ParsePercent(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Of возвращает долю суммы: amount * p / 100.
// Результат не округляется — полная внутренняя точность сохраняется
// до финального Round, чтобы остаток достался платформе, а не потерялся.
func (p Percent) Of(a Amount) Amount {
	return Amount{dec: a.dec.Mul(p.dec).Div(hundred)}
}

// Add возвращает сумму процентов (для проверки, что доли не превышают 100)
func (p Percent) Add(other Percent) Percent {
	return Percent{dec: p.dec.Add(other.dec)}
}

// GreaterThan сообщает, больше ли процент другого
func (p Percent) GreaterThan(other Percent) bool {
	return p.dec.GreaterThan(other.dec)
}

// IsZero сообщает, равен ли процент нулю
func (p Percent) IsZero() bool {
	return p.dec.IsZero()
}

// String возвращает строковое представление процента
func (p Percent) String() string {
	return p.dec.String()
}

// MarshalJSON сериализует процент как десятичную строку
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.dec.MarshalJSON()
}

// UnmarshalJSON десериализует процент с проверкой диапазона
func (p *Percent) UnmarshalJSON(data []byte) error {
	if err := p.dec.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPercent, data)
	}
	if p.dec.IsNegative() || p.dec.GreaterThan(hundred) {
		return fmt.Errorf("%w: %s out of [0, 100]", ErrInvalidPercent, data)
	}
	return nil
}

// Scan реализует sql.Scanner для чтения из numeric колонок
func (p *Percent) Scan(value any) error {
	return p.dec.Scan(value)
}

// Value реализует driver.Valuer для записи в numeric колонки
func (p Percent) Value() (any, error) {
	v, err := p.dec.Value()
	return v, err
}
