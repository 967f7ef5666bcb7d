package attr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/classcond/lang"
)

func uncond(classes string) lang.ConditionalClass {
	return lang.ConditionalClass{Classes: classes}
}

func when(classes, cond string) lang.ConditionalClass {
	return lang.ConditionalClass{Classes: classes, Condition: cond}
}

func TestExtractAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want [][]lang.ConditionalClass
		kind []Kind
	}{
		{
			name: "plain and helper",
			doc:  `<div className="flex"><span className={clsx('a', x && 'b')}>`,
			want: [][]lang.ConditionalClass{
				{uncond("flex")},
				{uncond("a"), when("b", "x")},
			},
			kind: []Kind{KindSimple, KindHelper},
		},
		{
			name: "plain and vue",
			doc:  `<div class="static" :class="{ active: isActive }">`,
			want: [][]lang.ConditionalClass{
				{uncond("static")},
				{when("active", "isActive")},
			},
			kind: []Kind{KindSimple, KindMixed},
		},
		{
			name: "single quoted plain",
			doc:  `<p class='  text-sm   italic '>`,
			want: [][]lang.ConditionalClass{{uncond("text-sm italic")}},
			kind: []Kind{KindSimple},
		},
		{
			name: "template",
			doc:  "<a className={`flex ${on ? 'ring' : ''} p-4`}>",
			want: [][]lang.ConditionalClass{
				{uncond("flex"), when("ring", "on"), uncond("p-4")},
			},
			kind: []Kind{KindTemplate},
		},
		{
			name: "helper with single array argument",
			doc:  `<a className={cn(['a', on && 'b'])}>`,
			want: [][]lang.ConditionalClass{{uncond("a"), when("b", "on")}},
			kind: []Kind{KindHelper},
		},
		{
			name: "helper with array and object arguments",
			doc:  `<a className={twMerge('base', ['x', y && 'z'], { w: v })}>`,
			want: [][]lang.ConditionalClass{{
				uncond("base"), uncond("x"), when("z", "y"), when("w", "v"),
			}},
			kind: []Kind{KindHelper},
		},
		{
			name: "brace string literal",
			doc:  `<a className={"flex gap-2"}>`,
			want: [][]lang.ConditionalClass{{uncond("flex gap-2")}},
			kind: []Kind{KindSimple},
		},
		{
			name: "brace expression",
			doc:  `<a class={on ? 'a' : 'b'}>`,
			want: [][]lang.ConditionalClass{{when("a", "on"), when("b", "!on")}},
			kind: []Kind{KindMixed},
		},
		{
			name: "vue array",
			doc:  `<div v-bind:class="[isActive ? 'a' : 'b', 'c']">`,
			want: [][]lang.ConditionalClass{{
				when("a", "isActive"), when("b", "!isActive"), uncond("c"),
			}},
			kind: []Kind{KindMixed},
		},
		{
			name: "vue string literal",
			doc:  `<div :class="'p-2 m-1'">`,
			want: [][]lang.ConditionalClass{{uncond("p-2 m-1")}},
			kind: []Kind{KindMixed},
		},
		{
			name: "svelte directives",
			doc:  `<div class:active={isActive} class:hidden={true} class:open>`,
			want: [][]lang.ConditionalClass{
				{when("active", "isActive")},
				{uncond("hidden")},
				{when("open", "open")},
			},
			kind: []Kind{KindMixed, KindMixed, KindMixed},
		},
		{
			name: "angular",
			doc:  `<div [ngClass]="{ 'text-red': hasError }" [class.bold]="isBold">`,
			want: [][]lang.ConditionalClass{
				{when("text-red", "hasError")},
				{when("bold", "isBold")},
			},
			kind: []Kind{KindMixed, KindMixed},
		},
		{
			name: "solid",
			doc:  `<div classList={{ active: isActive(), 'p-4': true }}>`,
			want: [][]lang.ConditionalClass{
				{when("active", "isActive()"), uncond("p-4")},
			},
			kind: []Kind{KindMixed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractAll(tt.doc)
			require.Len(t, got, len(tt.want))

			for i, e := range got {
				assert.Equal(t, tt.want[i], e.Conditional, "extraction %d", i)
				assert.Equal(t, tt.kind[i], e.Kind, "extraction %d", i)
				require.Len(t, e.ClassStrings, len(e.Conditional))

				for j, c := range e.Conditional {
					assert.Equal(t, c.Classes, e.ClassStrings[j])
				}
			}
		})
	}
}

func TestExtractAllRanges(t *testing.T) {
	t.Parallel()

	doc := `<div className="flex"><span className={clsx('a', x && 'b')}>`
	got := ExtractAll(doc)
	require.Len(t, got, 2)

	assert.Equal(t, Range{Start: 5, End: 21}, got[0].Range)
	assert.Equal(t, `className="flex"`, doc[got[0].Range.Start:got[0].Range.End])

	start := strings.Index(doc, "className={")
	assert.Equal(t, Range{Start: start, End: len(doc) - 1}, got[1].Range)
}

func TestExtractAllSkips(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"empty document":      ``,
		"no attributes":       `<div id="main">text</div>`,
		"unterminated plain":  `<div class="flex`,
		"unbalanced brace":    `<div className={clsx('a'`,
		"unknown helper":      `<div className={merge('a')}>`,
		"empty value":         `<div class="   ">`,
		"prefixed attribute":  `<div data-class="a">`,
		"svelte quoted value": `<div class:a="b">`,
		"svelte false":        `<div class:a={false}>`,
		"unterminated vue":    `<div :class="{ a: b }>`,
		"blank vue":           `<div :class="  ">`,
		"solid not an object": `<div classList={{ }}>`,
		"helper argument":     `<div className={clsx(props.className)}>`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Empty(t, ExtractAll(doc))
		})
	}
}

func TestExtractAllEscapedQuote(t *testing.T) {
	t.Parallel()

	doc := `<div :class="{ 'a\"b': on }" class="c">`
	got := ExtractAll(doc)
	require.Len(t, got, 2)

	assert.Equal(t, KindMixed, got[0].Kind)
	assert.Equal(t, []string{"c"}, got[1].ClassStrings)
	assert.Equal(t, len(doc)-1, got[1].Range.End)
}

func TestExtractAllBindingFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"escaped quotes", `<div :class="a \"b\" c">`, `a \"b\" c`},
		{"identifier", `<div :class="someClass">`, "someClass"},
		{"call", `<div v-bind:class="computeClasses()">`, "computeClasses()"},
		{"ng class", `<div [ngClass]="classesFor(item)">`, "classesFor(item)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractAll(tt.doc)
			require.Len(t, got, 1)

			assert.Equal(t, []lang.ConditionalClass{uncond(tt.want)}, got[0].Conditional)
			assert.Equal(t, KindMixed, got[0].Kind)
			assert.Equal(t, len(tt.doc)-1, got[0].Range.End)
		})
	}
}

func TestExtractAllNoOverlap(t *testing.T) {
	t.Parallel()

	// The plain locator also matches the attribute embedded in the template
	// string; only the enclosing extraction survives.
	doc := "<a className={`x ${on ? 'y' : ''}`} class=\"z\">" +
		"<b className={clsx(`p class=\"q\"`)}>"

	got := ExtractAll(doc)
	require.NotEmpty(t, got)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Range.Start, got[i-1].Range.End)
	}
}

func TestExtractorOptions(t *testing.T) {
	t.Parallel()

	doc := `<div class="a" :class="{ b: c }" className={merge('d')}>`

	t.Run("dialects", func(t *testing.T) {
		t.Parallel()

		got := New(WithDialects(DialectVue)).Extract(doc)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"b"}, got[0].ClassStrings)
	})

	t.Run("zero dialects selects all", func(t *testing.T) {
		t.Parallel()

		got := New(WithDialects(0)).Extract(doc)
		assert.Len(t, got, 2)
	})

	t.Run("helpers", func(t *testing.T) {
		t.Parallel()

		x := New(WithHelpers("merge"))
		got := x.Extract(doc)
		require.Len(t, got, 3)
		assert.Equal(t, KindHelper, got[2].Kind)
		assert.Contains(t, x.Helpers(), "merge")
		assert.Contains(t, x.Helpers(), "clsx")
	})

	t.Run("max depth", func(t *testing.T) {
		t.Parallel()

		nested := `<a class={a ? 'x' : b ? 'y' : c ? 'z' : 'w'}>`
		assert.Empty(t, New(WithMaxDepth(2)).Extract(nested))

		got := New(WithMaxDepth(3)).Extract(nested)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"x", "y", "z", "w"}, got[0].ClassStrings)
	})
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	mk := func(start, end int, name string) Extraction {
		e, ok := makeExtraction([]lang.ConditionalClass{uncond(name)}, start, end, KindSimple)
		require.True(t, ok)

		return e
	}

	got := dedupe([]Extraction{
		mk(10, 20, "b"),
		mk(0, 12, "a"),
		mk(12, 15, "c"),
		mk(20, 25, "d"),
		mk(20, 30, "e"),
	})

	var names []string
	for _, e := range got {
		names = append(names, e.ClassStrings...)
	}

	assert.Equal(t, []string{"a", "c", "d"}, names)
}

func TestMakeExtraction(t *testing.T) {
	t.Parallel()

	_, ok := makeExtraction(nil, 0, 1, KindSimple)
	assert.False(t, ok)

	_, ok = makeExtraction([]lang.ConditionalClass{uncond("a")}, 3, 3, KindSimple)
	assert.False(t, ok)
}
