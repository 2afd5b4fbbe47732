package conslisp

import (
	"path"
	"sort"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/conslisp/statik"
)

//go:generate statik -src=lib -f

// LoadLib evaluates every prelude file embedded from lib/ into env, in
// file name order.
func LoadLib(env *Env, ctx *Context) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	sort.Slice(fis, func(i, j int) bool { return fis[i].Name() < fis[j].Name() })
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".lisp" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return err
		}
		node, err := NewParser(f).Parse()
		f.Close()
		if err != nil {
			return err
		}
		if _, err = Eval(node, env, ctx); err != nil {
			return err
		}
		if ctx.Logger != nil {
			ctx.Logger.Info("prelude loaded", "file", fi.Name())
		}
	}
	return nil
}
