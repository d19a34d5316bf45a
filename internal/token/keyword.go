/*
File    : internal/token/keyword.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package token

// Keyword enumerates the closed set of reserved words recognized after an
// identifier-shaped lexeme is fully scanned.
type Keyword string

const (
	Break      Keyword = "break"
	Case       Keyword = "case"
	Catch      Keyword = "catch"
	Class      Keyword = "class"
	Const      Keyword = "const"
	Continue   Keyword = "continue"
	Debugger   Keyword = "debugger"
	Default    Keyword = "default"
	Delete     Keyword = "delete"
	Do         Keyword = "do"
	Else       Keyword = "else"
	Export     Keyword = "export"
	Extends    Keyword = "extends"
	Finally    Keyword = "finally"
	For        Keyword = "for"
	Function   Keyword = "function"
	If         Keyword = "if"
	Import     Keyword = "import"
	In         Keyword = "in"
	Instanceof Keyword = "instanceof"
	New        Keyword = "new"
	Return     Keyword = "return"
	Super      Keyword = "super"
	Switch     Keyword = "switch"
	This       Keyword = "this"
	Throw      Keyword = "throw"
	Try        Keyword = "try"
	Typeof     Keyword = "typeof"
	Var        Keyword = "var"
	Void       Keyword = "void"
	While      Keyword = "while"
	With       Keyword = "with"
	Yield      Keyword = "yield"

	Implements Keyword = "implements"
	Interface  Keyword = "interface"
	Let        Keyword = "let"
	Package    Keyword = "package"
	Private    Keyword = "private"
	Protected  Keyword = "protected"
	Public     Keyword = "public"
	Static     Keyword = "static"

	Await Keyword = "await"
	Async Keyword = "async"

	True  Keyword = "true"
	False Keyword = "false"
	Null  Keyword = "null"

	Get Keyword = "get"
	Set Keyword = "set"
)

var keywords = map[string]Keyword{
	string(Break):      Break,
	string(Case):       Case,
	string(Catch):      Catch,
	string(Class):      Class,
	string(Const):      Const,
	string(Continue):   Continue,
	string(Debugger):   Debugger,
	string(Default):    Default,
	string(Delete):     Delete,
	string(Do):         Do,
	string(Else):       Else,
	string(Export):     Export,
	string(Extends):    Extends,
	string(Finally):    Finally,
	string(For):        For,
	string(Function):   Function,
	string(If):         If,
	string(Import):     Import,
	string(In):         In,
	string(Instanceof): Instanceof,
	string(New):        New,
	string(Return):     Return,
	string(Super):      Super,
	string(Switch):     Switch,
	string(This):       This,
	string(Throw):      Throw,
	string(Try):        Try,
	string(Typeof):     Typeof,
	string(Var):        Var,
	string(Void):       Void,
	string(While):      While,
	string(With):       With,
	string(Yield):      Yield,

	string(Implements): Implements,
	string(Interface):  Interface,
	string(Let):        Let,
	string(Package):    Package,
	string(Private):    Private,
	string(Protected):  Protected,
	string(Public):     Public,
	string(Static):     Static,

	string(Await): Await,
	string(Async): Async,

	string(True):  True,
	string(False): False,
	string(Null):  Null,

	string(Get): Get,
	string(Set): Set,
}

// LookupKeyword reports whether word is a reserved word and, if so, which
// one. The main dispatcher consults this after scanning a full identifier
// lexeme, never before, so a keyword prefix of a longer identifier (e.g.
// "instanceofx") is never misclassified.
func LookupKeyword(word string) (Keyword, bool) {
	kw, ok := keywords[word]
	return kw, ok
}
