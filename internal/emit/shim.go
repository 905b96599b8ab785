package emit

import (
	"fmt"
	"sort"
	"strings"
)

// File names of the runtime support artifacts.
const (
	GjsDeclFile   = "Gjs.d.ts"
	GjsJSFile     = "Gjs.js"
	PrintDeclFile = "print.d.ts"
	IndexDeclFile = "index.d.ts"
	IndexJSFile   = "index.js"
	CastFile      = "cast.ts"
)

const gjsDeclarations = `export namespace byteArray {
    export class ByteArray {
        constructor(len: number)
        toGBytes(): any  // GLib.Bytes?
        length: number
    }
    export function fromString(input: string): ByteArray
    export function fromArray(input: number[]): ByteArray
    export function fromGBytes(input: any): ByteArray
    export function toString(x: ByteArray): string
}
export namespace console {
    export function interact(): void
}
export namespace Lang {
    export function Class(props: any): void
}
export namespace gettext {
    export enum LocaleCategory {
        ALL, COLLATE, CTYPE, MESSAGES, MONETARY, NUMERIC, TIME
    }
    export function setlocale(category: number, locale: string|null): string
    export function textdomain(domainname: string|null): string
    export function bindtextdomain(domainname: string, dirname: string|null): string
    export function gettext(msgid: string): string
    export function dgettext(domainname: string|null, msgid: string): string
    export function dcgettext(domainname: string|null, msgid: string, category: number): string
    export function ngettext(msgid: string, msgid_plural: string, n: number): string
    export function dngettext(domainname: string, msgid: string, msgid_plural: string, n: number): string
    export function domain(domainName: string): { gettext: ((msgid: string) => string), ngettext: ((msgid: string, msgid_plural: string, n:number) => string), pgettext: ((context: any, msgid: string) => any) }
}
export namespace Format {
    export function vprintf(str: string, args: string[]): string
    export function printf(fmt: string, ...args: any[]): void
    /**
     * Formats a string with %s, %d, %x and %f specifiers. Install it with
     * String.prototype.format = Format.format, then call
     * "somestring %s %d".format('hello', 5).
     * Precisions such as "%.2f" and minimum widths such as "%5s" are
     * supported. Widths are padded with spaces unless prefixed with '0'.
     */
    export function format(fmt: string, ...args: any[]): string
}
export namespace Mainloop {
    export function quit(name: string): void
    export function idle_source(handler: any, priority: number): any
    export function idle_add(handler: any, priority: number): any
    export function timeout_source(timeout: any, handler: any, priority: number): any
    export function timeout_seconds_source(timeout: any, handler: any, priority: number): any
    export function timeout_add(timeout: any, handler: any, priority: number): any
    export function timeout_add_seconds(timeout: any, handler: any, priority: number): any
    export function source_remove(id: any): any
    export function run(name: string): void
}
`

const gjsModule = `module.exports = {
    byteArray: imports.byteArray,
    Lang: imports.lang,
    Format: imports.format,
    Mainloop: imports.mainloop,
    gettext: imports.gettext
}`

// print is declared in its own file; declaring it in the global block of
// index.d.ts breaks dependents with TS2383.
const printDeclaration = `declare function print(...args: any[]): void`

const castHelper = `
interface StaticNamed {
    name: string
}

/** Casts between derived classes, performing a run-time type-check
 * and raising an exception if the cast fails. Allows casting to implemented
 * interfaces, too.
 */
export function giCast<T>(from_: GObject.Object, to_: StaticNamed): T {
    let desc: string = from_.toString()
    let clsName: string|null = null
    for (let k of desc.split(" ")) {
        if (k.substring(0, 7) == "GIName:") {
            clsName = k.substring(7)
            break
        }
    }
    let toName = to_.name.replace("_", ".")

    if (toName === clsName)
        return ((from_ as any) as T)

    if (clsName) {
        let parents = inheritanceTable[clsName]
        if (parents) {
            if (parents.indexOf(toName) >= 0)
                return ((from_ as any) as T)
        }
    }

    throw Error("Invalid cast of " + desc + "(" + clsName + ") to " + toName)
}
`

// GjsDeclarations returns the declarations of the GJS built-in modules.
func GjsDeclarations() string { return gjsDeclarations }

// GjsModule returns the runtime shim exporting the GJS built-in modules.
func GjsModule() string { return gjsModule }

// PrintDeclaration returns the global print declaration.
func PrintDeclaration() string { return printDeclaration }

// IndexModule returns the empty runtime entry point.
func IndexModule() string { return "" }

// ModuleShim returns the runtime shim re-exporting a GI module.
func ModuleShim(name string) string {
	return "module.exports = imports.gi." + name
}

// IndexDeclarations returns the entry point declaring the GJS globals and
// the typed imports.gi object for the named modules.
func IndexDeclarations(names []string) string {
	var b strings.Builder
	b.WriteString("/// <reference path=\"print.d.ts\" />\n\n")
	b.WriteString("import * as Gjs from \"./Gjs\";\n")
	for i, name := range names {
		fmt.Fprintf(&b, "import * as %s from \"./%s\";", name, name)
		if i < len(names)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString(`

declare global {
    function printerr(...args: any[]): void
    function log(message?: string): void
    function logError(exception: any, message?: string): void
    const ARGV: string[]
    const imports: typeof Gjs & {
        [key: string]: any
        gi: {
`)
	for i, name := range names {
		fmt.Fprintf(&b, "            %s: typeof %s", name, name)
		if i < len(names)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString(`
        }
        searchPath: string[]
    }
}

export { }`)
	return b.String()
}

// Cast returns the lines of the cast helper embedding the inheritance
// table. Classes are listed in name order.
func Cast(table map[string][]string) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	def := []string{
		"import * as GObject from './GObject'",
		"",
		"let inheritanceTable = {",
	}
	for _, name := range names {
		if len(table[name]) == 0 {
			def = append(def, fmt.Sprintf("    '%s': [ ],", name))
			continue
		}
		def = append(def, fmt.Sprintf("    '%s': [ '%s' ],", name, strings.Join(table[name], "', '")))
	}
	def = append(def, "}", "", castHelper)
	return def
}
