package girxml

import "encoding/xml"

// Attribute matching ignores the namespace prefix, so "c:type" is read
// through a field tagged "type,attr" and <glib:signal> through "signal".

// Repository is the root <repository> element.
type Repository struct {
	XMLName    xml.Name    `xml:"repository"`
	Version    string      `xml:"version,attr"`
	Includes   []Include   `xml:"include"`
	Namespaces []Namespace `xml:"namespace"`
}

// Include is an <include> element.
type Include struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

// Namespace is a <namespace> element.
type Namespace struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`

	Aliases      []Alias       `xml:"alias"`
	Bitfields    []Enumeration `xml:"bitfield"`
	Callbacks    []Function    `xml:"callback"`
	Classes      []Class       `xml:"class"`
	Constants    []Variable    `xml:"constant"`
	Enumerations []Enumeration `xml:"enumeration"`
	Functions    []Function    `xml:"function"`
	Interfaces   []Class       `xml:"interface"`
	Records      []Class       `xml:"record"`
	Unions       []Class       `xml:"union"`
}

// Class is a <class>, <interface>, <record> or <union> element.
type Class struct {
	Name             string `xml:"name,attr"`
	Parent           string `xml:"parent,attr"`
	Introspectable   string `xml:"introspectable,attr"`
	IsGTypeStructFor string `xml:"is-gtype-struct-for,attr"`

	Implements     []Implements `xml:"implements"`
	Constructors   []Function   `xml:"constructor"`
	Functions      []Function   `xml:"function"`
	Methods        []Function   `xml:"method"`
	VirtualMethods []Function   `xml:"virtual-method"`
	Signals        []Function   `xml:"signal"`
	Properties     []Variable   `xml:"property"`
	Fields         []Variable   `xml:"field"`
}

// Implements is an <implements> element.
type Implements struct {
	Name string `xml:"name,attr"`
}

// Function is any function-like element.
type Function struct {
	Name           string `xml:"name,attr"`
	CIdentifier    string `xml:"identifier,attr"`
	Introspectable string `xml:"introspectable,attr"`
	Shadows        string `xml:"shadows,attr"`
	ShadowedBy     string `xml:"shadowed-by,attr"`

	InstanceParameter *Variable `xml:"parameters>instance-parameter"`
	Parameters        []Variable `xml:"parameters>parameter"`
	ReturnValue       *Variable  `xml:"return-value"`
}

// Variable is a <parameter>, <return-value>, <property>, <field> or
// <constant> element.
type Variable struct {
	Name           string `xml:"name,attr"`
	Nullable       string `xml:"nullable,attr"`
	AllowNone      string `xml:"allow-none,attr"`
	Optional       string `xml:"optional,attr"`
	Direction      string `xml:"direction,attr"`
	Introspectable string `xml:"introspectable,attr"`
	Private        string `xml:"private,attr"`
	Readable       string `xml:"readable,attr"`
	Writable       string `xml:"writable,attr"`
	Construct      string `xml:"construct,attr"`
	ConstructOnly  string `xml:"construct-only,attr"`
	Closure        string `xml:"closure,attr"`
	Destroy        string `xml:"destroy,attr"`
	Value          string `xml:"value,attr"`

	Type  *Type  `xml:"type"`
	Array *Array `xml:"array"`
}

// Type is a <type> element. Container types nest their parameters.
type Type struct {
	Name  string `xml:"name,attr"`
	CType string `xml:"type,attr"`
	Types []Type `xml:"type"`
}

// Array is an <array> element.
type Array struct {
	Length         string `xml:"length,attr"`
	ZeroTerminated string `xml:"zero-terminated,attr"`
	CType          string `xml:"type,attr"`
	Type           *Type  `xml:"type"`
}

// Enumeration is an <enumeration> or <bitfield> element.
type Enumeration struct {
	Name           string   `xml:"name,attr"`
	CType          string   `xml:"type,attr"`
	Introspectable string   `xml:"introspectable,attr"`
	Members        []Member `xml:"member"`
}

// Member is a <member> element. Its attributes are kept raw because
// "name" and "glib:name" share a local name.
type Member struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// Name returns the unprefixed name attribute.
func (m *Member) Name() string { return m.attr("name") }

// Value returns the value attribute.
func (m *Member) Value() string { return m.attr("value") }

func (m *Member) attr(local string) string {
	for _, a := range m.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// Alias is an <alias> element.
type Alias struct {
	Name           string `xml:"name,attr"`
	CType          string `xml:"type,attr"`
	Introspectable string `xml:"introspectable,attr"`
	Type           *Type  `xml:"type"`
}
