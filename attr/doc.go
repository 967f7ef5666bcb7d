// Package attr locates class attributes in template source and resolves each
// one into an [Extraction]: the conditional classes it applies and the byte
// range it occupies.
//
// Six attribute dialects are recognized, each by its own locator:
//
//	class="flex p-4"                              // HTML (also className="…")
//	className={clsx('a', on && 'b')}              // JSX: helper call
//	className={`flex ${on ? 'a' : 'b'}`}          // JSX: template string
//	:class="{ active: isActive }"                 // Vue (also v-bind:class)
//	class:active={isActive}                       // Svelte directive
//	[ngClass]="{ active: on }" [class.x]="on"     // Angular
//	classList={{ active: isActive }}              // Solid
//
// Every locator scans the whole document independently. [Extractor.Extract]
// merges their results in document order and drops any extraction that
// overlaps one that starts earlier.
//
// The dynamic part of each attribute is resolved by package lang. Attributes
// that are unterminated or that resolve to no classes are skipped silently;
// documents are usually mid-edit when they are scanned.
package attr
