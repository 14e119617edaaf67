package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `analyzer checks for forbidden function calls

This analyzer reports:
1. Usage of panic() function
2. Calls to log.Fatal*() or os.Exit() outside main function of main package`

var Analyzer = &analysis.Analyzer{
	Name:     "paniclogexit",
	Doc:      doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		callExpr := node.(*ast.CallExpr)

		if strings.HasSuffix(pass.Fset.Position(callExpr.Pos()).Filename, "_test.go") {
			return
		}

		switch fun := callExpr.Fun.(type) {
		case *ast.Ident:
			// Проверка panic(), свою функцию с именем panic не трогаем
			if _, ok := pass.TypesInfo.Uses[fun].(*types.Builtin); ok && fun.Name == "panic" {
				pass.Reportf(callExpr.Pos(), "panic() should not be used in production code")
			}
		case *ast.SelectorExpr:
			fn, ok := pass.TypesInfo.Uses[fun.Sel].(*types.Func)
			if !ok || fn.Pkg() == nil {
				return
			}

			pkgPath, funcName := fn.Pkg().Path(), fn.Name()
			forbidden := (pkgPath == "log" && strings.HasPrefix(funcName, "Fatal")) ||
				(pkgPath == "os" && funcName == "Exit")
			if forbidden && !isInMainFunction(pass, node) {
				pass.Reportf(
					callExpr.Pos(),
					"%s.%s() should only be called from main function in main package",
					pkgPath,
					funcName,
				)
			}
		}
	})

	return nil, nil
}

func isInMainFunction(pass *analysis.Pass, node ast.Node) bool {
	if pass.Pkg.Name() != "main" {
		return false
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil && fn.Name.Name == "main" && fn.Body != nil {
				if node.Pos() >= fn.Body.Lbrace && node.Pos() <= fn.Body.Rbrace {
					return true
				}
			}
		}
	}
	return false
}
