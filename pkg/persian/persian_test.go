package persian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPersianDigits(t *testing.T) {
	assert.Equal(t, "۱۲۳۴۵۶۷۸۹۰", ToPersianDigits("1234567890"))
	assert.Equal(t, "فصل ۲، قسمت ۱۰", ToPersianDigits("فصل 2، قسمت 10"))
	assert.Equal(t, "بدون رقم", ToPersianDigits("بدون رقم"))
}

func TestNormalizeSpacing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses runs of spaces",
			in:   "سلام    دنیا",
			want: "سلام دنیا",
		},
		{
			name: "space after comma, none before",
			in:   "سلام ،دنیا",
			want: "سلام، دنیا",
		},
		{
			name: "question and exclamation marks",
			in:   "چرا ؟حالا !برو",
			want: "چرا؟ حالا! برو",
		},
		{
			name: "full stop spacing",
			in:   "تمام شد .بعدی",
			want: "تمام شد. بعدی",
		},
		{
			name: "trims and drops trailing punct space",
			in:   "  متن تمیز ، آری . ",
			want: "متن تمیز، آری.",
		},
		{
			name: "tabs treated as spaces",
			in:   "یک\t\tدو",
			want: "یک دو",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSpacing(tt.in))
		})
	}
}

func TestNormalizeSpacingIdempotent(t *testing.T) {
	inputs := []string{
		"Speaker 2:   سلام  ،دنیا",
		"چرا ؟حالا !برو",
		"متن عادی بدون تغییر.",
	}
	for _, in := range inputs {
		once := NormalizeSpacing(in)
		assert.Equal(t, once, NormalizeSpacing(once))
	}
}

func TestStripSpeakerIDs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "numbered speaker",
			in:   "Speaker 2: سلام دنیا",
			want: "سلام دنیا",
		},
		{
			name: "uppercase label",
			in:   "HOST: متن صیقل‌خورده",
			want: "متن صیقل‌خورده",
		},
		{
			name: "label with underscore",
			in:   "GUEST_1: خوش آمدید",
			want: "خوش آمدید",
		},
		{
			name: "no label untouched",
			in:   "متن بدون گوینده",
			want: "متن بدون گوینده",
		},
		{
			name: "colon inside sentence kept",
			in:   "نتیجه: مهم است",
			want: "نتیجه: مهم است",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripSpeakerIDs(tt.in))
		})
	}
}
