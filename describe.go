package props

// Describer lets a type declare its injectable members without struct tags.
// When *T implements Describer the declarations are authoritative and tags
// on T are ignored.
//
// This is also the hook for code generators: a generator can emit the
// declaration table from any metadata source.
type Describer interface {
	// DescribeInjection returns the injectable members in declaration order.
	DescribeInjection() []Declaration
}

// Declaration describes one injectable member of a Describer.
type Declaration struct {
	Field     string     // Exported Go field name
	Name      string     // Injection key, defaults to Field
	Group     string     // Optional group
	Sensitive bool       // Protect the value on export
	Secret    SecretAlgo // Secret algorithm, defaults to DefaultSecret when Sensitive
	Mask      MaskType   // Optional display mask for non-sensitive members
}
