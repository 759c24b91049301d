package ast

// This file declares the strongly-typed ESTree variants the rest of the
// core (namespace matcher, tracer, plugins) works against directly via
// type assertions. See es5.md / the TC39 ESTree spec for field semantics.
// A generic fallback (generic.go) covers statement/declaration shapes that
// the core never needs typed access to.

// --- Program & statements -------------------------------------------------

type Program struct {
	base
	Body       []Node
	SourceType string
}

func (n *Program) Kind() string           { return "Program" }
func (n *Program) FieldNames() []string   { return []string{"body", "sourceType"} }
func (n *Program) Dict() map[string]interface{} { return dictOf(n) }
func (n *Program) FieldValue(name string) interface{} {
	switch name {
	case "body":
		return n.Body
	case "sourceType":
		return n.SourceType
	}
	return nil
}

func newProgram(data map[string]interface{}) (Node, error) {
	n := &Program{}
	n.loc = data["loc"]
	body, err := objList(data["body"])
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.SourceType, _ = data["sourceType"].(string)
	n.extra = extraKeys(data, "body", "sourceType")
	return n, nil
}

type BlockStatement struct {
	base
	Body []Node
}

func (n *BlockStatement) Kind() string         { return "BlockStatement" }
func (n *BlockStatement) FieldNames() []string { return []string{"body"} }
func (n *BlockStatement) Dict() map[string]interface{} { return dictOf(n) }
func (n *BlockStatement) FieldValue(name string) interface{} {
	if name == "body" {
		return n.Body
	}
	return nil
}

func newBlockStatement(data map[string]interface{}) (Node, error) {
	n := &BlockStatement{}
	n.loc = data["loc"]
	body, err := objList(data["body"])
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.extra = extraKeys(data, "body")
	return n, nil
}

type ExpressionStatement struct {
	base
	Expression Node
}

func (n *ExpressionStatement) Kind() string         { return "ExpressionStatement" }
func (n *ExpressionStatement) FieldNames() []string { return []string{"expression"} }
func (n *ExpressionStatement) Dict() map[string]interface{} { return dictOf(n) }
func (n *ExpressionStatement) FieldValue(name string) interface{} {
	if name == "expression" {
		return n.Expression
	}
	return nil
}

func newExpressionStatement(data map[string]interface{}) (Node, error) {
	n := &ExpressionStatement{}
	n.loc = data["loc"]
	expr, err := objNode(data["expression"])
	if err != nil {
		return nil, err
	}
	n.Expression = expr
	n.extra = extraKeys(data, "expression")
	return n, nil
}

type ReturnStatement struct {
	base
	Argument Node
}

func (n *ReturnStatement) Kind() string         { return "ReturnStatement" }
func (n *ReturnStatement) FieldNames() []string { return []string{"argument"} }
func (n *ReturnStatement) Dict() map[string]interface{} { return dictOf(n) }
func (n *ReturnStatement) FieldValue(name string) interface{} {
	if name == "argument" {
		return n.Argument
	}
	return nil
}

func newReturnStatement(data map[string]interface{}) (Node, error) {
	n := &ReturnStatement{}
	n.loc = data["loc"]
	arg, err := objNode(data["argument"])
	if err != nil {
		return nil, err
	}
	n.Argument = arg
	n.extra = extraKeys(data, "argument")
	return n, nil
}

// --- Identifiers & literals -----------------------------------------------

type Identifier struct {
	base
	Name string
}

func (n *Identifier) Kind() string         { return "Identifier" }
func (n *Identifier) FieldNames() []string { return []string{"name"} }
func (n *Identifier) Dict() map[string]interface{} { return dictOf(n) }
func (n *Identifier) FieldValue(name string) interface{} {
	if name == "name" {
		return n.Name
	}
	return nil
}

func newIdentifier(data map[string]interface{}) (Node, error) {
	n := &Identifier{}
	n.loc = data["loc"]
	n.Name, _ = data["name"].(string)
	n.extra = extraKeys(data, "name")
	return n, nil
}

type Literal struct {
	base
	Raw   string
	Value interface{}
	Regex interface{}
}

func (n *Literal) Kind() string         { return "Literal" }
func (n *Literal) FieldNames() []string { return []string{"raw", "value", "regex"} }
func (n *Literal) Dict() map[string]interface{} {
	out := dictOf(n)
	if n.Regex == nil {
		delete(out, "regex")
	}
	return out
}
func (n *Literal) FieldValue(name string) interface{} {
	switch name {
	case "raw":
		return n.Raw
	case "value":
		return n.Value
	case "regex":
		return n.Regex
	}
	return nil
}

func newLiteral(data map[string]interface{}) (Node, error) {
	n := &Literal{}
	n.loc = data["loc"]
	n.Raw, _ = data["raw"].(string)
	n.Value = data["value"]
	n.Regex = data["regex"]
	n.extra = extraKeys(data, "raw", "value", "regex")
	return n, nil
}

type ThisExpression struct {
	base
}

func (n *ThisExpression) Kind() string                  { return "ThisExpression" }
func (n *ThisExpression) FieldNames() []string           { return nil }
func (n *ThisExpression) Dict() map[string]interface{}  { return dictOf(n) }
func (n *ThisExpression) FieldValue(string) interface{} { return nil }

func newThisExpression(data map[string]interface{}) (Node, error) {
	n := &ThisExpression{}
	n.loc = data["loc"]
	n.extra = extraKeys(data)
	return n, nil
}

// --- Arrays & objects ------------------------------------------------------

type ArrayExpression struct {
	base
	Elements []Node
}

func (n *ArrayExpression) Kind() string         { return "ArrayExpression" }
func (n *ArrayExpression) FieldNames() []string { return []string{"elements"} }
func (n *ArrayExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *ArrayExpression) FieldValue(name string) interface{} {
	if name == "elements" {
		return n.Elements
	}
	return nil
}

func newArrayExpression(data map[string]interface{}) (Node, error) {
	n := &ArrayExpression{}
	n.loc = data["loc"]
	el, err := objList(data["elements"])
	if err != nil {
		return nil, err
	}
	n.Elements = el
	n.extra = extraKeys(data, "elements")
	return n, nil
}

type ObjectExpression struct {
	base
	Properties []Node
}

func (n *ObjectExpression) Kind() string         { return "ObjectExpression" }
func (n *ObjectExpression) FieldNames() []string { return []string{"properties"} }
func (n *ObjectExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *ObjectExpression) FieldValue(name string) interface{} {
	if name == "properties" {
		return n.Properties
	}
	return nil
}

func newObjectExpression(data map[string]interface{}) (Node, error) {
	n := &ObjectExpression{}
	n.loc = data["loc"]
	props, err := objList(data["properties"])
	if err != nil {
		return nil, err
	}
	n.Properties = props
	n.extra = extraKeys(data, "properties")
	return n, nil
}

type Property struct {
	base
	Key       Node
	Value     Node
	PKind     string
	Computed  bool
	Shorthand bool
	Method    bool
}

func (n *Property) Kind() string { return "Property" }
func (n *Property) FieldNames() []string {
	return []string{"key", "value", "kind", "computed", "shorthand", "method"}
}
func (n *Property) Dict() map[string]interface{} { return dictOf(n) }
func (n *Property) FieldValue(name string) interface{} {
	switch name {
	case "key":
		return n.Key
	case "value":
		return n.Value
	case "kind":
		return n.PKind
	case "computed":
		return n.Computed
	case "shorthand":
		return n.Shorthand
	case "method":
		return n.Method
	}
	return nil
}

func newProperty(data map[string]interface{}) (Node, error) {
	n := &Property{}
	n.loc = data["loc"]
	key, err := objNode(data["key"])
	if err != nil {
		return nil, err
	}
	n.Key = key
	val, err := objNode(data["value"])
	if err != nil {
		return nil, err
	}
	n.Value = val
	n.PKind, _ = data["kind"].(string)
	n.Computed, _ = data["computed"].(bool)
	n.Shorthand, _ = data["shorthand"].(bool)
	n.Method, _ = data["method"].(bool)
	n.extra = extraKeys(data, "key", "value", "kind", "computed", "shorthand", "method")
	return n, nil
}

// --- Functions ---------------------------------------------------------

type FunctionDeclaration struct {
	base
	Id     Node
	Params []Node
	Body   Node
}

func (n *FunctionDeclaration) Kind() string         { return "FunctionDeclaration" }
func (n *FunctionDeclaration) FieldNames() []string { return []string{"id", "params", "body"} }
func (n *FunctionDeclaration) Dict() map[string]interface{} { return dictOf(n) }
func (n *FunctionDeclaration) FieldValue(name string) interface{} {
	switch name {
	case "id":
		return n.Id
	case "params":
		return n.Params
	case "body":
		return n.Body
	}
	return nil
}

func newFunctionDeclaration(data map[string]interface{}) (Node, error) {
	n := &FunctionDeclaration{}
	n.loc = data["loc"]
	id, err := objNode(data["id"])
	if err != nil {
		return nil, err
	}
	n.Id = id
	params, err := objList(data["params"])
	if err != nil {
		return nil, err
	}
	n.Params = params
	body, err := objNode(data["body"])
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.extra = extraKeys(data, "id", "params", "body")
	return n, nil
}

type FunctionExpression struct {
	base
	Id     Node
	Params []Node
	Body   Node
}

func (n *FunctionExpression) Kind() string         { return "FunctionExpression" }
func (n *FunctionExpression) FieldNames() []string { return []string{"id", "params", "body"} }
func (n *FunctionExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *FunctionExpression) FieldValue(name string) interface{} {
	switch name {
	case "id":
		return n.Id
	case "params":
		return n.Params
	case "body":
		return n.Body
	}
	return nil
}

func newFunctionExpression(data map[string]interface{}) (Node, error) {
	n := &FunctionExpression{}
	n.loc = data["loc"]
	id, err := objNode(data["id"])
	if err != nil {
		return nil, err
	}
	n.Id = id
	params, err := objList(data["params"])
	if err != nil {
		return nil, err
	}
	n.Params = params
	body, err := objNode(data["body"])
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.extra = extraKeys(data, "id", "params", "body")
	return n, nil
}

type ArrowFunctionExpression struct {
	base
	Params []Node
	Body   Node
}

func (n *ArrowFunctionExpression) Kind() string         { return "ArrowFunctionExpression" }
func (n *ArrowFunctionExpression) FieldNames() []string { return []string{"params", "body"} }
func (n *ArrowFunctionExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *ArrowFunctionExpression) FieldValue(name string) interface{} {
	switch name {
	case "params":
		return n.Params
	case "body":
		return n.Body
	}
	return nil
}

func newArrowFunctionExpression(data map[string]interface{}) (Node, error) {
	n := &ArrowFunctionExpression{}
	n.loc = data["loc"]
	params, err := objList(data["params"])
	if err != nil {
		return nil, err
	}
	n.Params = params
	body, err := objNode(data["body"])
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.extra = extraKeys(data, "params", "body")
	return n, nil
}

// --- Variable declarations -------------------------------------------------

type VariableDeclaration struct {
	base
	Declarations []Node
	DKind        string
}

func (n *VariableDeclaration) Kind() string         { return "VariableDeclaration" }
func (n *VariableDeclaration) FieldNames() []string { return []string{"declarations", "kind"} }
func (n *VariableDeclaration) Dict() map[string]interface{} { return dictOf(n) }
func (n *VariableDeclaration) FieldValue(name string) interface{} {
	switch name {
	case "declarations":
		return n.Declarations
	case "kind":
		return n.DKind
	}
	return nil
}

func newVariableDeclaration(data map[string]interface{}) (Node, error) {
	n := &VariableDeclaration{}
	n.loc = data["loc"]
	decls, err := objList(data["declarations"])
	if err != nil {
		return nil, err
	}
	n.Declarations = decls
	n.DKind, _ = data["kind"].(string)
	n.extra = extraKeys(data, "declarations", "kind")
	return n, nil
}

type VariableDeclarator struct {
	base
	Id   Node
	Init Node
}

func (n *VariableDeclarator) Kind() string         { return "VariableDeclarator" }
func (n *VariableDeclarator) FieldNames() []string { return []string{"id", "init"} }
func (n *VariableDeclarator) Dict() map[string]interface{} { return dictOf(n) }
func (n *VariableDeclarator) FieldValue(name string) interface{} {
	switch name {
	case "id":
		return n.Id
	case "init":
		return n.Init
	}
	return nil
}

func newVariableDeclarator(data map[string]interface{}) (Node, error) {
	n := &VariableDeclarator{}
	n.loc = data["loc"]
	id, err := objNode(data["id"])
	if err != nil {
		return nil, err
	}
	n.Id = id
	init, err := objNode(data["init"])
	if err != nil {
		return nil, err
	}
	n.Init = init
	n.extra = extraKeys(data, "id", "init")
	return n, nil
}

// --- Operators ------------------------------------------------------------

type AssignmentExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

func (n *AssignmentExpression) Kind() string         { return "AssignmentExpression" }
func (n *AssignmentExpression) FieldNames() []string { return []string{"operator", "left", "right"} }
func (n *AssignmentExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *AssignmentExpression) FieldValue(name string) interface{} {
	switch name {
	case "operator":
		return n.Operator
	case "left":
		return n.Left
	case "right":
		return n.Right
	}
	return nil
}

func newAssignmentExpression(data map[string]interface{}) (Node, error) {
	n := &AssignmentExpression{}
	n.loc = data["loc"]
	n.Operator, _ = data["operator"].(string)
	left, err := objNode(data["left"])
	if err != nil {
		return nil, err
	}
	n.Left = left
	right, err := objNode(data["right"])
	if err != nil {
		return nil, err
	}
	n.Right = right
	n.extra = extraKeys(data, "operator", "left", "right")
	return n, nil
}

type BinaryExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

func (n *BinaryExpression) Kind() string         { return "BinaryExpression" }
func (n *BinaryExpression) FieldNames() []string { return []string{"operator", "left", "right"} }
func (n *BinaryExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *BinaryExpression) FieldValue(name string) interface{} {
	switch name {
	case "operator":
		return n.Operator
	case "left":
		return n.Left
	case "right":
		return n.Right
	}
	return nil
}

func newBinaryExpression(data map[string]interface{}) (Node, error) {
	n := &BinaryExpression{}
	n.loc = data["loc"]
	n.Operator, _ = data["operator"].(string)
	left, err := objNode(data["left"])
	if err != nil {
		return nil, err
	}
	n.Left = left
	right, err := objNode(data["right"])
	if err != nil {
		return nil, err
	}
	n.Right = right
	n.extra = extraKeys(data, "operator", "left", "right")
	return n, nil
}

type LogicalExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

func (n *LogicalExpression) Kind() string         { return "LogicalExpression" }
func (n *LogicalExpression) FieldNames() []string { return []string{"operator", "left", "right"} }
func (n *LogicalExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *LogicalExpression) FieldValue(name string) interface{} {
	switch name {
	case "operator":
		return n.Operator
	case "left":
		return n.Left
	case "right":
		return n.Right
	}
	return nil
}

func newLogicalExpression(data map[string]interface{}) (Node, error) {
	n := &LogicalExpression{}
	n.loc = data["loc"]
	n.Operator, _ = data["operator"].(string)
	left, err := objNode(data["left"])
	if err != nil {
		return nil, err
	}
	n.Left = left
	right, err := objNode(data["right"])
	if err != nil {
		return nil, err
	}
	n.Right = right
	n.extra = extraKeys(data, "operator", "left", "right")
	return n, nil
}

type UnaryExpression struct {
	base
	Operator string
	Argument Node
	Prefix   bool
}

func (n *UnaryExpression) Kind() string         { return "UnaryExpression" }
func (n *UnaryExpression) FieldNames() []string { return []string{"operator", "argument", "prefix"} }
func (n *UnaryExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *UnaryExpression) FieldValue(name string) interface{} {
	switch name {
	case "operator":
		return n.Operator
	case "argument":
		return n.Argument
	case "prefix":
		return n.Prefix
	}
	return nil
}

func newUnaryExpression(data map[string]interface{}) (Node, error) {
	n := &UnaryExpression{}
	n.loc = data["loc"]
	n.Operator, _ = data["operator"].(string)
	arg, err := objNode(data["argument"])
	if err != nil {
		return nil, err
	}
	n.Argument = arg
	n.Prefix, _ = data["prefix"].(bool)
	n.extra = extraKeys(data, "operator", "argument", "prefix")
	return n, nil
}

type UpdateExpression struct {
	base
	Operator string
	Argument Node
	Prefix   bool
}

func (n *UpdateExpression) Kind() string         { return "UpdateExpression" }
func (n *UpdateExpression) FieldNames() []string { return []string{"operator", "argument", "prefix"} }
func (n *UpdateExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *UpdateExpression) FieldValue(name string) interface{} {
	switch name {
	case "operator":
		return n.Operator
	case "argument":
		return n.Argument
	case "prefix":
		return n.Prefix
	}
	return nil
}

func newUpdateExpression(data map[string]interface{}) (Node, error) {
	n := &UpdateExpression{}
	n.loc = data["loc"]
	n.Operator, _ = data["operator"].(string)
	arg, err := objNode(data["argument"])
	if err != nil {
		return nil, err
	}
	n.Argument = arg
	n.Prefix, _ = data["prefix"].(bool)
	n.extra = extraKeys(data, "operator", "argument", "prefix")
	return n, nil
}

type ConditionalExpression struct {
	base
	Test       Node
	Consequent Node
	Alternate  Node
}

func (n *ConditionalExpression) Kind() string { return "ConditionalExpression" }
func (n *ConditionalExpression) FieldNames() []string {
	return []string{"test", "consequent", "alternate"}
}
func (n *ConditionalExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *ConditionalExpression) FieldValue(name string) interface{} {
	switch name {
	case "test":
		return n.Test
	case "consequent":
		return n.Consequent
	case "alternate":
		return n.Alternate
	}
	return nil
}

func newConditionalExpression(data map[string]interface{}) (Node, error) {
	n := &ConditionalExpression{}
	n.loc = data["loc"]
	test, err := objNode(data["test"])
	if err != nil {
		return nil, err
	}
	n.Test = test
	cons, err := objNode(data["consequent"])
	if err != nil {
		return nil, err
	}
	n.Consequent = cons
	alt, err := objNode(data["alternate"])
	if err != nil {
		return nil, err
	}
	n.Alternate = alt
	n.extra = extraKeys(data, "test", "consequent", "alternate")
	return n, nil
}

type SequenceExpression struct {
	base
	Expressions []Node
}

func (n *SequenceExpression) Kind() string         { return "SequenceExpression" }
func (n *SequenceExpression) FieldNames() []string { return []string{"expressions"} }
func (n *SequenceExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *SequenceExpression) FieldValue(name string) interface{} {
	if name == "expressions" {
		return n.Expressions
	}
	return nil
}

func newSequenceExpression(data map[string]interface{}) (Node, error) {
	n := &SequenceExpression{}
	n.loc = data["loc"]
	exprs, err := objList(data["expressions"])
	if err != nil {
		return nil, err
	}
	n.Expressions = exprs
	n.extra = extraKeys(data, "expressions")
	return n, nil
}

// --- Calls & member access --------------------------------------------------

type CallExpression struct {
	base
	Callee    Node
	Arguments []Node
}

func (n *CallExpression) Kind() string         { return "CallExpression" }
func (n *CallExpression) FieldNames() []string { return []string{"callee", "arguments"} }
func (n *CallExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *CallExpression) FieldValue(name string) interface{} {
	switch name {
	case "callee":
		return n.Callee
	case "arguments":
		return n.Arguments
	}
	return nil
}

func newCallExpression(data map[string]interface{}) (Node, error) {
	n := &CallExpression{}
	n.loc = data["loc"]
	callee, err := objNode(data["callee"])
	if err != nil {
		return nil, err
	}
	n.Callee = callee
	args, err := objList(data["arguments"])
	if err != nil {
		return nil, err
	}
	n.Arguments = args
	n.extra = extraKeys(data, "callee", "arguments")
	return n, nil
}

type NewExpression struct {
	base
	Callee    Node
	Arguments []Node
}

func (n *NewExpression) Kind() string         { return "NewExpression" }
func (n *NewExpression) FieldNames() []string { return []string{"callee", "arguments"} }
func (n *NewExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *NewExpression) FieldValue(name string) interface{} {
	switch name {
	case "callee":
		return n.Callee
	case "arguments":
		return n.Arguments
	}
	return nil
}

func newNewExpression(data map[string]interface{}) (Node, error) {
	n := &NewExpression{}
	n.loc = data["loc"]
	callee, err := objNode(data["callee"])
	if err != nil {
		return nil, err
	}
	n.Callee = callee
	args, err := objList(data["arguments"])
	if err != nil {
		return nil, err
	}
	n.Arguments = args
	n.extra = extraKeys(data, "callee", "arguments")
	return n, nil
}

type MemberExpression struct {
	base
	Object   Node
	Property Node
	Computed bool
}

func (n *MemberExpression) Kind() string         { return "MemberExpression" }
func (n *MemberExpression) FieldNames() []string { return []string{"object", "property", "computed"} }
func (n *MemberExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *MemberExpression) FieldValue(name string) interface{} {
	switch name {
	case "object":
		return n.Object
	case "property":
		return n.Property
	case "computed":
		return n.Computed
	}
	return nil
}

func newMemberExpression(data map[string]interface{}) (Node, error) {
	n := &MemberExpression{}
	n.loc = data["loc"]
	obj, err := objNode(data["object"])
	if err != nil {
		return nil, err
	}
	n.Object = obj
	prop, err := objNode(data["property"])
	if err != nil {
		return nil, err
	}
	n.Property = prop
	n.Computed, _ = data["computed"].(bool)
	n.extra = extraKeys(data, "object", "property", "computed")
	return n, nil
}

// --- Template literals -------------------------------------------------

type TemplateLiteral struct {
	base
	Quasis      []Node
	Expressions []Node
}

func (n *TemplateLiteral) Kind() string         { return "TemplateLiteral" }
func (n *TemplateLiteral) FieldNames() []string { return []string{"quasis", "expressions"} }
func (n *TemplateLiteral) Dict() map[string]interface{} { return dictOf(n) }
func (n *TemplateLiteral) FieldValue(name string) interface{} {
	switch name {
	case "quasis":
		return n.Quasis
	case "expressions":
		return n.Expressions
	}
	return nil
}

func newTemplateLiteral(data map[string]interface{}) (Node, error) {
	n := &TemplateLiteral{}
	n.loc = data["loc"]
	quasis, err := objList(data["quasis"])
	if err != nil {
		return nil, err
	}
	n.Quasis = quasis
	exprs, err := objList(data["expressions"])
	if err != nil {
		return nil, err
	}
	n.Expressions = exprs
	n.extra = extraKeys(data, "quasis", "expressions")
	return n, nil
}

type TemplateElement struct {
	base
	Value interface{} // {"cooked": ..., "raw": ...}
	Tail  bool
}

func (n *TemplateElement) Kind() string         { return "TemplateElement" }
func (n *TemplateElement) FieldNames() []string { return []string{"value", "tail"} }
func (n *TemplateElement) Dict() map[string]interface{} { return dictOf(n) }
func (n *TemplateElement) FieldValue(name string) interface{} {
	switch name {
	case "value":
		return n.Value
	case "tail":
		return n.Tail
	}
	return nil
}

func newTemplateElement(data map[string]interface{}) (Node, error) {
	n := &TemplateElement{}
	n.loc = data["loc"]
	n.Value = data["value"]
	n.Tail, _ = data["tail"].(bool)
	n.extra = extraKeys(data, "value", "tail")
	return n, nil
}

// Cooked returns the cooked string value of a TemplateElement, if present.
func (n *TemplateElement) Cooked() (string, bool) {
	m, ok := n.Value.(map[string]interface{})
	if !ok {
		return "", false
	}
	s, ok := m["cooked"].(string)
	return s, ok
}

type TaggedTemplateExpression struct {
	base
	Tag   Node
	Quasi Node
}

func (n *TaggedTemplateExpression) Kind() string         { return "TaggedTemplateExpression" }
func (n *TaggedTemplateExpression) FieldNames() []string { return []string{"tag", "quasi"} }
func (n *TaggedTemplateExpression) Dict() map[string]interface{} { return dictOf(n) }
func (n *TaggedTemplateExpression) FieldValue(name string) interface{} {
	switch name {
	case "tag":
		return n.Tag
	case "quasi":
		return n.Quasi
	}
	return nil
}

func newTaggedTemplateExpression(data map[string]interface{}) (Node, error) {
	n := &TaggedTemplateExpression{}
	n.loc = data["loc"]
	tag, err := objNode(data["tag"])
	if err != nil {
		return nil, err
	}
	n.Tag = tag
	quasi, err := objNode(data["quasi"])
	if err != nil {
		return nil, err
	}
	n.Quasi = quasi
	n.extra = extraKeys(data, "tag", "quasi")
	return n, nil
}

// --- Spread / rest -----------------------------------------------------

type SpreadElement struct {
	base
	Argument Node
}

func (n *SpreadElement) Kind() string         { return "SpreadElement" }
func (n *SpreadElement) FieldNames() []string { return []string{"argument"} }
func (n *SpreadElement) Dict() map[string]interface{} { return dictOf(n) }
func (n *SpreadElement) FieldValue(name string) interface{} {
	if name == "argument" {
		return n.Argument
	}
	return nil
}

func newSpreadElement(data map[string]interface{}) (Node, error) {
	n := &SpreadElement{}
	n.loc = data["loc"]
	arg, err := objNode(data["argument"])
	if err != nil {
		return nil, err
	}
	n.Argument = arg
	n.extra = extraKeys(data, "argument")
	return n, nil
}

// --- Modules -------------------------------------------------------------

type ImportDeclaration struct {
	base
	Specifiers []Node
	Source     Node
}

func (n *ImportDeclaration) Kind() string         { return "ImportDeclaration" }
func (n *ImportDeclaration) FieldNames() []string { return []string{"specifiers", "source"} }
func (n *ImportDeclaration) Dict() map[string]interface{} { return dictOf(n) }
func (n *ImportDeclaration) FieldValue(name string) interface{} {
	switch name {
	case "specifiers":
		return n.Specifiers
	case "source":
		return n.Source
	}
	return nil
}

func newImportDeclaration(data map[string]interface{}) (Node, error) {
	n := &ImportDeclaration{}
	n.loc = data["loc"]
	specs, err := objList(data["specifiers"])
	if err != nil {
		return nil, err
	}
	n.Specifiers = specs
	src, err := objNode(data["source"])
	if err != nil {
		return nil, err
	}
	n.Source = src
	n.extra = extraKeys(data, "specifiers", "source")
	return n, nil
}

type ImportSpecifier struct {
	base
	Imported Node
	Local    Node
}

func (n *ImportSpecifier) Kind() string         { return "ImportSpecifier" }
func (n *ImportSpecifier) FieldNames() []string { return []string{"imported", "local"} }
func (n *ImportSpecifier) Dict() map[string]interface{} { return dictOf(n) }
func (n *ImportSpecifier) FieldValue(name string) interface{} {
	switch name {
	case "imported":
		return n.Imported
	case "local":
		return n.Local
	}
	return nil
}

func newImportSpecifier(data map[string]interface{}) (Node, error) {
	n := &ImportSpecifier{}
	n.loc = data["loc"]
	imp, err := objNode(data["imported"])
	if err != nil {
		return nil, err
	}
	n.Imported = imp
	local, err := objNode(data["local"])
	if err != nil {
		return nil, err
	}
	n.Local = local
	n.extra = extraKeys(data, "imported", "local")
	return n, nil
}

type ImportDefaultSpecifier struct {
	base
	Local Node
}

func (n *ImportDefaultSpecifier) Kind() string         { return "ImportDefaultSpecifier" }
func (n *ImportDefaultSpecifier) FieldNames() []string { return []string{"local"} }
func (n *ImportDefaultSpecifier) Dict() map[string]interface{} { return dictOf(n) }
func (n *ImportDefaultSpecifier) FieldValue(name string) interface{} {
	if name == "local" {
		return n.Local
	}
	return nil
}

func newImportDefaultSpecifier(data map[string]interface{}) (Node, error) {
	n := &ImportDefaultSpecifier{}
	n.loc = data["loc"]
	local, err := objNode(data["local"])
	if err != nil {
		return nil, err
	}
	n.Local = local
	n.extra = extraKeys(data, "local")
	return n, nil
}

type ImportNamespaceSpecifier struct {
	base
	Local Node
}

func (n *ImportNamespaceSpecifier) Kind() string         { return "ImportNamespaceSpecifier" }
func (n *ImportNamespaceSpecifier) FieldNames() []string { return []string{"local"} }
func (n *ImportNamespaceSpecifier) Dict() map[string]interface{} { return dictOf(n) }
func (n *ImportNamespaceSpecifier) FieldValue(name string) interface{} {
	if name == "local" {
		return n.Local
	}
	return nil
}

func newImportNamespaceSpecifier(data map[string]interface{}) (Node, error) {
	n := &ImportNamespaceSpecifier{}
	n.loc = data["loc"]
	local, err := objNode(data["local"])
	if err != nil {
		return nil, err
	}
	n.Local = local
	n.extra = extraKeys(data, "local")
	return n, nil
}

// registry maps ESTree type names to constructors. It is filled at init
// time: the init below adds the strongly-typed variants, generic.go's init
// adds the fallback entries, and a typed variant wins over a fallback of
// the same kind. Filling it in an init keeps the constructors, which reach
// registry through Objectify, out of registry's own initializer.
var registry = map[string]func(map[string]interface{}) (Node, error){}

func init() {
	for kind, ctor := range map[string]func(map[string]interface{}) (Node, error){
	"Program":                  newProgram,
	"BlockStatement":           newBlockStatement,
	"ExpressionStatement":      newExpressionStatement,
	"ReturnStatement":          newReturnStatement,
	"Identifier":               newIdentifier,
	"Literal":                  newLiteral,
	"ThisExpression":           newThisExpression,
	"ArrayExpression":          newArrayExpression,
	"ObjectExpression":         newObjectExpression,
	"Property":                 newProperty,
	"FunctionDeclaration":      newFunctionDeclaration,
	"FunctionExpression":       newFunctionExpression,
	"ArrowFunctionExpression":  newArrowFunctionExpression,
	"VariableDeclaration":      newVariableDeclaration,
	"VariableDeclarator":       newVariableDeclarator,
	"AssignmentExpression":     newAssignmentExpression,
	"BinaryExpression":         newBinaryExpression,
	"LogicalExpression":        newLogicalExpression,
	"UnaryExpression":          newUnaryExpression,
	"UpdateExpression":         newUpdateExpression,
	"ConditionalExpression":    newConditionalExpression,
	"SequenceExpression":       newSequenceExpression,
	"CallExpression":           newCallExpression,
	"NewExpression":            newNewExpression,
	"MemberExpression":         newMemberExpression,
	"TemplateLiteral":          newTemplateLiteral,
	"TemplateElement":          newTemplateElement,
	"TaggedTemplateExpression": newTaggedTemplateExpression,
	"SpreadElement":            newSpreadElement,
	"ImportDeclaration":        newImportDeclaration,
	"ImportSpecifier":          newImportSpecifier,
	"ImportDefaultSpecifier":   newImportDefaultSpecifier,
	"ImportNamespaceSpecifier": newImportNamespaceSpecifier,
	} {
		registry[kind] = ctor
	}
}
