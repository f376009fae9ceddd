package services

import (
	"fmt"
	"sort"

	"household-budget/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	DefaultSampleCount = 60
	MaxSampleCount     = 500
)

// payee is a plausible shop or biller for generated expenses
type payee struct {
	Name     string
	Category string
	Min      int
	Max      int
	// BillDay pins monthly bills to one day; zero means any day
	BillDay int
}

type sampleExpenseGenerator struct {
	bills     []payee
	purchases []payee
	faker     *gofakeit.Faker
}

// NewSampleExpenseGenerator creates a generator. Seed 0 picks a random seed.
func NewSampleExpenseGenerator(seed uint64) SampleExpenseGeneratorInterface {
	return &sampleExpenseGenerator{
		bills:     billPayees(),
		purchases: purchasePayees(),
		faker:     gofakeit.New(seed),
	}
}

func billPayees() []payee {
	return []payee{
		{Name: "家賃", Category: "housing", Min: 90000, Max: 90000, BillDay: 27},
		{Name: "東京電力", Category: "utilities", Min: 6000, Max: 14000, BillDay: 10},
		{Name: "東京ガス", Category: "utilities", Min: 3000, Max: 8000, BillDay: 12},
		{Name: "水道局", Category: "utilities", Min: 2500, Max: 5000, BillDay: 20},
		{Name: "携帯電話", Category: "communication", Min: 4000, Max: 9000, BillDay: 25},
		{Name: "光回線", Category: "communication", Min: 5000, Max: 5500, BillDay: 25},
		{Name: "生命保険", Category: "insurance", Min: 12000, Max: 12000, BillDay: 5},
	}
}

func purchasePayees() []payee {
	return []payee{
		{Name: "スーパー", Category: "food", Min: 800, Max: 6000},
		{Name: "コンビニ", Category: "food", Min: 200, Max: 1500},
		{Name: "ランチ", Category: "food", Min: 700, Max: 1800},
		{Name: "パン屋", Category: "food", Min: 300, Max: 1200},
		{Name: "ドラッグストア", Category: "daily_goods", Min: 500, Max: 4000},
		{Name: "ホームセンター", Category: "daily_goods", Min: 800, Max: 8000},
		{Name: "電車", Category: "transportation", Min: 170, Max: 1200},
		{Name: "ガソリン", Category: "transportation", Min: 3000, Max: 7000},
		{Name: "クリニック", Category: "medical", Min: 1000, Max: 5000},
		{Name: "薬局", Category: "medical", Min: 500, Max: 3000},
		{Name: "映画館", Category: "entertainment", Min: 1900, Max: 4000},
		{Name: "書店", Category: "entertainment", Min: 700, Max: 3500},
		{Name: "居酒屋", Category: "social", Min: 3000, Max: 8000},
		{Name: "プレゼント", Category: "social", Min: 2000, Max: 10000},
		{Name: "美容院", Category: "clothing", Min: 4000, Max: 9000},
		{Name: "衣料品店", Category: "clothing", Min: 2000, Max: 15000},
		{Name: "教材", Category: "education", Min: 1500, Max: 6000},
	}
}

// GenerateMonth returns count sample expenses dated within month, sorted by date.
// The monthly bills come first and count toward the total.
func (g *sampleExpenseGenerator) GenerateMonth(month string, count int) ([]RecordExpenseInput, error) {
	start, err := models.ParseMonthKey(month)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = DefaultSampleCount
	}
	if count > MaxSampleCount {
		count = MaxSampleCount
	}

	days := models.DaysInMonth(start.Year(), start.Month())
	inputs := make([]RecordExpenseInput, 0, count)

	for _, bill := range g.bills {
		if len(inputs) == count {
			break
		}
		inputs = append(inputs, g.expense(month, bill, min(bill.BillDay, days)))
	}

	for len(inputs) < count {
		p := g.purchases[g.faker.IntRange(0, len(g.purchases)-1)]
		inputs = append(inputs, g.expense(month, p, g.faker.IntRange(1, days)))
	}

	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].Date < inputs[j].Date
	})
	return inputs, nil
}

func (g *sampleExpenseGenerator) expense(month string, p payee, day int) RecordExpenseInput {
	memo := p.Name
	return RecordExpenseInput{
		Date:     fmt.Sprintf("%s-%02d", month, day),
		Category: p.Category,
		Amount:   g.amount(p),
		Memo:     &memo,
	}
}

// amount is rounded down to 10 yen, except for fixed-price bills
func (g *sampleExpenseGenerator) amount(p payee) int64 {
	if p.Min == p.Max {
		return int64(p.Min)
	}
	n := g.faker.IntRange(p.Min, p.Max)
	return int64(n - n%10)
}
