// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
i18n_extract scans the module for translatable text.

By default it writes the gettext template with every i18n.Tr family msgid and
every i18n.MsgKey constant. With -check it instead verifies that every
constant i18n.Key names an entry of the default message catalog and that no
locale lacks a key of the default catalog, exiting non-zero otherwise.
*/
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/tools/go/packages"

	"codeberg.org/mikyai/website/i18n"
)

// key models a gettext entry identified by context, singular msgid,
// and optional plural msgid_plural. For non-plural entries, plural is empty.
type key struct {
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// refKind tells which catalogue a constant string belongs to.
type refKind int

const (
	notTranslatable refKind = iota
	gettextMsg              // i18n.MsgKey: English source text
	catalogKey              // i18n.Key: dotted YAML catalog key
)

// extractor holds the shared state and context for AST analysis within a package.
type extractor struct {
	refs        map[key][]ref
	keyRefs     map[string][]ref
	projectRoot string
	fset        *token.FileSet
	info        *types.Info
	i18nPkgs    map[string]struct{}
}

func main() {
	outPath := flag.String("o", "assets/po/website.pot", "output file")
	check := flag.Bool("check", false, "verify catalog keys instead of writing the template")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		log.Fatalf("failed to load packages: %v", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal("failed to load packages due to errors")
	}

	refs, keyRefs := extractRefs(pkgs, findProjectRoot(wd), findI18nPkgPaths(pkgs))

	if *check {
		if problems := checkCatalogs(keyRefs); problems > 0 {
			log.Fatalf("%d catalog problem(s)", problems)
		}

		return
	}

	if err := writeTemplate(*outPath, refs); err != nil {
		log.Fatal(err)
	}
}

// writeTemplate emits the POT file for refs at outPath.
func writeTemplate(outPath string, refs map[key][]ref) error {
	keys := make([]key, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}

		return keys[i].plural < keys[j].plural
	})

	var b strings.Builder
	writeHeader(&b)

	for i, k := range keys {
		writeRefs(&b, refs[k])

		fmt.Fprintf(&b, "msgid %q\n", k.id)

		if k.plural != "" {
			fmt.Fprintf(&b, "msgid_plural %q\n", k.plural)
			fmt.Fprintf(&b, "msgstr[0] \"\"\n")
			fmt.Fprintf(&b, "msgstr[1] \"\"\n")
		} else {
			fmt.Fprintf(&b, "msgstr \"\"\n")
		}

		if i < len(keys)-1 {
			fmt.Fprintln(&b)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	return nil
}

// writeRefs writes the "#:" reference comment, sorted and without duplicates.
func writeRefs(b *strings.Builder, rs []ref) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].file != rs[j].file {
			return rs[i].file < rs[j].file
		}

		return rs[i].line < rs[j].line
	})

	fmt.Fprint(b, "#:")

	var last ref

	for _, r := range rs {
		if r != last {
			fmt.Fprintf(b, " %s:%d", r.file, r.line)

			last = r
		}
	}

	fmt.Fprintln(b)
}

// checkCatalogs loads the embedded catalogs and reports every referenced key
// the default locale cannot resolve, plus every key a locale is missing.
//
// A referenced key may also be a prefix of catalog entries, as with the base
// key of a page whose children are reached through Key.Sub.
func checkCatalogs(keyRefs map[string][]ref) int {
	if err := i18n.Setup(); err != nil {
		log.Printf("failed to load catalogs: %v", err)

		return 1
	}

	base := i18n.Messages(i18n.DefaultLocale)
	defined := base.Keys()

	problems := 0

	names := make([]string, 0, len(keyRefs))
	for k := range keyRefs {
		names = append(names, k)
	}

	sort.Strings(names)

	for _, k := range names {
		if resolves(defined, k) {
			continue
		}

		r := keyRefs[k][0]
		fmt.Printf("%s:%d: key %q is not in the %s catalog\n", r.file, r.line, k, i18n.DefaultLocale)

		problems++
	}

	for _, l := range i18n.Locales() {
		for _, k := range i18n.Messages(l).Missing() {
			fmt.Printf("%s: missing %q\n", l, k)

			problems++
		}
	}

	return problems
}

func resolves(defined []string, k string) bool {
	i := sort.SearchStrings(defined, k)
	if i < len(defined) && defined[i] == k {
		return true
	}

	// Keys sort right after their prefix.
	for _, d := range defined[i:] {
		if strings.HasPrefix(d, k+".") {
			return true
		}

		if !strings.HasPrefix(d, k) {
			break
		}
	}

	return false
}

// extractRefs traverses all Go source files in the given packages,
// looking for i18n function calls, message keys and catalog keys.
func extractRefs(pkgs []*packages.Package, projectRoot string, i18nPkgPaths map[string]struct{}) (map[key][]ref, map[string][]ref) {
	refs := map[key][]ref{}
	keyRefs := map[string][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		e := &extractor{
			refs:        refs,
			keyRefs:     keyRefs,
			projectRoot: projectRoot,
			fset:        p.Fset,
			info:        p.TypesInfo,
			i18nPkgs:    i18nPkgPaths,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				switch x := n.(type) {
				case *ast.CallExpr:
					e.handleCallExpr(x)
				case *ast.CompositeLit:
					e.handleCompositeLit(x)
				}

				return true
			})
		}
	}

	return refs, keyRefs
}

// findI18nPkgPaths returns the package paths named i18n that define a MsgKey
// string type, regardless of how they are imported or aliased.
func findI18nPkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name != "i18n" || p.Types == nil {
			continue
		}

		tn, ok := p.Types.Scope().Lookup("MsgKey").(*types.TypeName)
		if !ok {
			continue
		}

		if basic, ok := tn.Type().Underlying().(*types.Basic); ok && basic.Kind() == types.String {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

// constString evaluates expr to a constant string if possible using types.Info.
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// kindOf reports whether t is i18n.MsgKey, i18n.Key or neither.
func (e *extractor) kindOf(t types.Type) refKind {
	named, ok := t.(*types.Named)
	if !ok {
		return notTranslatable
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return notTranslatable
	}

	if _, ok := e.i18nPkgs[obj.Pkg().Path()]; !ok {
		return notTranslatable
	}

	switch obj.Name() {
	case "MsgKey":
		return gettextMsg
	case "Key":
		return catalogKey
	}

	return notTranslatable
}

// record adds expr to the catalogue of kind when it is a constant string.
func (e *extractor) record(kind refKind, expr ast.Expr) {
	if kind == notTranslatable {
		return
	}

	msg, ok := constString(e.info, expr)
	if !ok {
		return
	}

	if kind == gettextMsg {
		e.addRef(expr.Pos(), msg, "")
	} else {
		e.keyRefs[msg] = append(e.keyRefs[msg], e.position(expr.Pos()))
	}
}

// handleCompositeLit finds implicit conversions to the i18n string types in
// map, slice, array and struct literals.
func (e *extractor) handleCompositeLit(x *ast.CompositeLit) {
	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok && p.Elem() != nil {
		t = p.Elem()
	}

	switch u := t.Underlying().(type) {
	case *types.Map:
		keyKind, valKind := e.kindOf(u.Key()), e.kindOf(u.Elem())

		for _, elt := range x.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				e.record(keyKind, kv.Key)
				e.record(valKind, kv.Value)
			}
		}

	case *types.Slice:
		e.recordAll(e.kindOf(u.Elem()), x.Elts)

	case *types.Array:
		e.recordAll(e.kindOf(u.Elem()), x.Elts)

	case *types.Struct:
		for i, elt := range x.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				id, ok := kv.Key.(*ast.Ident)
				if !ok {
					continue
				}

				for j := range u.NumFields() {
					if f := u.Field(j); f.Name() == id.Name {
						e.record(e.kindOf(f.Type()), kv.Value)
					}
				}

				continue
			}

			if i < u.NumFields() {
				e.record(e.kindOf(u.Field(i).Type()), elt)
			}
		}
	}
}

func (e *extractor) recordAll(kind refKind, elts []ast.Expr) {
	for _, elt := range elts {
		e.record(kind, elt)
	}
}

// handleCallExpr finds conversions, Tr family calls and arguments passed as
// i18n string types.
func (e *extractor) handleCallExpr(x *ast.CallExpr) {
	// i18n.MsgKey("Hello") or i18n.Key("nav.home")
	if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 {
			e.record(e.kindOf(tv.Type), x.Args[0])
		}

		return
	}

	if e.handleTrCall(x) {
		return
	}

	sig, ok := e.info.TypeOf(x.Fun).(*types.Signature)
	if !ok {
		return
	}

	params := sig.Params()

	n := params.Len()
	if n == 0 {
		return
	}

	for i, arg := range x.Args {
		var pt types.Type

		switch {
		case sig.Variadic() && i >= n-1:
			// Called with ...slice: the composite literal, if any, is handled on its own.
			if x.Ellipsis != token.NoPos {
				continue
			}

			pt = params.At(n - 1).Type().(*types.Slice).Elem()
		case i < n:
			pt = params.At(i).Type()
		default:
			return
		}

		e.record(e.kindOf(pt), arg)
	}
}

// handleTrCall records the msgids of i18n.Tr, TrN and NewUserError.
func (e *extractor) handleTrCall(x *ast.CallExpr) bool {
	sel, ok := x.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	fn, ok := e.info.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}

	if _, ok := e.i18nPkgs[fn.Pkg().Path()]; !ok {
		return false
	}

	switch fn.Name() {
	case "Tr", "NewUserError", "TrN":
	default:
		return false
	}

	// Argument 0 is the context.
	if len(x.Args) < 2 {
		return true
	}

	msg, ok := constString(e.info, x.Args[1])
	if !ok {
		return true
	}

	var plural string

	if fn.Name() == "TrN" {
		if len(x.Args) < 3 {
			return true
		}

		if plural, ok = constString(e.info, x.Args[2]); !ok {
			return true
		}
	}

	e.addRef(x.Args[1].Pos(), msg, plural)

	return true
}

// position returns pos as a file reference relative to the project root.
func (e *extractor) position(pos token.Pos) ref {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.projectRoot, file); err == nil {
		file = rel
	}

	return ref{file: filepath.ToSlash(file), line: p.Line}
}

// addRef records a reference to a msgid.
func (e *extractor) addRef(pos token.Pos, msg, plural string) {
	k := key{id: msg, plural: plural}

	e.refs[k] = append(e.refs[k], e.position(pos))
}

// writeHeader emits a POT header.
func writeHeader(b *strings.Builder) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: Miky.ai website %s\\n\"\n", detectVersion())
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", time.Now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"Report-Msgid-Bugs-To: https://codeberg.org/mikyai/website/issues\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}

// detectVersion resolves a version string using git describe, or "dev".
func detectVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

// findProjectRoot returns the git toplevel, else the nearest directory with a
// go.mod, else wd.
func findProjectRoot(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = wd

	if out, err := cmd.Output(); err == nil {
		if root := strings.TrimSpace(string(out)); root != "" {
			return filepath.Clean(root)
		}
	}

	for dir := filepath.Clean(wd); ; dir = filepath.Dir(dir) {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		if filepath.Dir(dir) == dir {
			return wd
		}
	}
}
