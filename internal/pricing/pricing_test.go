package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		sel  domain.BookingSelection
		want int64
	}{
		{
			name: "empty selection",
			sel:  domain.BookingSelection{},
			want: 0,
		},
		{
			name: "couples with gold package",
			sel: domain.BookingSelection{
				Package:      "Couples Theatre - 1111",
				Cake:         "Chocolate Cake - 500",
				NeedsPackage: domain.NeedsPackageYes,
			},
			want: 3611,
		},
		{
			name: "family with individual add-ons and no cake",
			sel: domain.BookingSelection{
				Package:      "Family Theatre - 1599",
				NeedsPackage: domain.NeedsPackageNo,
				AdditionalOptions: domain.AdditionalOptions{
					Decoration:  true,
					Photography: true,
					FogEntry:    "2 pots - 500",
				},
			},
			want: 3298,
		},
		{
			name: "gold package ignores add-ons",
			sel: domain.BookingSelection{
				Package:      "Friends Theatre - 1599",
				NeedsPackage: domain.NeedsPackageYes,
				AdditionalOptions: domain.AdditionalOptions{
					Decoration:  true,
					Photography: true,
					FogEntry:    "Grand Fog Entry (10 pots) - 1599",
				},
			},
			want: 1599 + 2500,
		},
		{
			name: "unset gold choice still prices add-ons",
			sel: domain.BookingSelection{
				Package:           "Couples Theatre - 1111",
				AdditionalOptions: domain.AdditionalOptions{Decoration: true},
			},
			want: 1111 + 500,
		},
		{
			name: "unknown identifiers contribute zero",
			sel: domain.BookingSelection{
				Package:           "Penthouse Theatre - 9999",
				Cake:              "Mystery Cake",
				NeedsPackage:      domain.NeedsPackageNo,
				AdditionalOptions: domain.AdditionalOptions{FogEntry: "100 pots"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(&tt.sel))
			assert.Equal(t, tt.want, Calculate(&tt.sel), "calculate must be idempotent")
		})
	}
}

func TestCalculate_NilSelection(t *testing.T) {
	assert.Zero(t, Calculate(nil))
}

func TestGoldPackageExcludesAddOns(t *testing.T) {
	fogs := append([]Item{{ID: ""}}, Default().FogEntries...)
	for _, fog := range fogs {
		for _, decoration := range []bool{false, true} {
			for _, photography := range []bool{false, true} {
				sel := domain.BookingSelection{
					Package:      "Family Theatre - 1599",
					NeedsPackage: domain.NeedsPackageYes,
					AdditionalOptions: domain.AdditionalOptions{
						Decoration:  decoration,
						Photography: photography,
						FogEntry:    fog.ID,
					},
				}
				assert.Equal(t, int64(1599+2500), Calculate(&sel))
			}
		}
	}
}

func TestBreakdown(t *testing.T) {
	sel := domain.BookingSelection{
		Package:      "Family Theatre - 1599",
		NeedsPackage: domain.NeedsPackageNo,
		AdditionalOptions: domain.AdditionalOptions{
			Decoration: true,
			FogEntry:   "2 pots - 500",
		},
	}

	lines := Default().Breakdown(&sel)

	assert.Equal(t, []Line{
		{Label: "Family Theatre - 1599", Amount: 1599},
		{Label: "Decoration", Amount: 500},
		{Label: "Fog Entry: 2 pots - 500", Amount: 500},
	}, lines)

	var sum int64
	for _, l := range lines {
		sum += l.Amount
	}
	assert.Equal(t, Calculate(&sel), sum)
}

func TestGoldPackagePrice(t *testing.T) {
	c := Default()
	assert.Equal(t, GoldPackageCouples, c.GoldPackagePrice("Couples Theatre - 1111"))
	assert.Equal(t, GoldPackageStandard, c.GoldPackagePrice("Family Theatre - 1599"))
	assert.Equal(t, GoldPackageStandard, c.GoldPackagePrice(""))
}
