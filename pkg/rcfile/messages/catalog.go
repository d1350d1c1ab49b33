package messages

func init() {
	for _, msg := range catalog {
		Register(msg)
	}
}

// catalog lists the messages the checker can emit, grouped by category.
// RemovedIn and RenamedTo carry the lifecycle facts a configuration
// health check needs to spot stale suppressions.
var catalog = []Message{
	// Convention
	{ID: "C0103", Symbol: "invalid-name", Category: CategoryConvention, Description: "Name doesn't conform to the naming rules associated with its type."},
	{ID: "C0112", Symbol: "empty-docstring", Category: CategoryConvention, Description: "Module, function, class or method has an empty docstring."},
	{ID: "C0114", Symbol: "missing-module-docstring", Category: CategoryConvention, Description: "Module has no docstring."},
	{ID: "C0115", Symbol: "missing-class-docstring", Category: CategoryConvention, Description: "Class has no docstring."},
	{ID: "C0116", Symbol: "missing-function-docstring", Category: CategoryConvention, Description: "Function or method has no docstring."},
	{ID: "C0121", Symbol: "singleton-comparison", Category: CategoryConvention, Description: "Comparison to a singleton like True, False or None uses an equality operator."},
	{ID: "C0123", Symbol: "unidiomatic-typecheck", Category: CategoryConvention, Description: "Type of an object is checked with type() instead of isinstance()."},
	{ID: "C0301", Symbol: "line-too-long", Category: CategoryConvention, Description: "Line is longer than the maximum number of characters."},
	{ID: "C0302", Symbol: "too-many-lines", Category: CategoryConvention, Description: "Module has too many lines, reducing its readability."},
	{ID: "C0303", Symbol: "trailing-whitespace", Category: CategoryConvention, Description: "Line ends with whitespace."},
	{ID: "C0304", Symbol: "missing-final-newline", Category: CategoryConvention, Description: "File does not end with a newline."},
	{ID: "C0305", Symbol: "trailing-newlines", Category: CategoryConvention, Description: "File ends with more than one newline."},
	{ID: "C0321", Symbol: "multiple-statements", Category: CategoryConvention, Description: "More than one statement on a single line."},
	{ID: "C0325", Symbol: "superfluous-parens", Category: CategoryConvention, Description: "A keyword such as not or return is followed by parentheses it does not need."},
	{ID: "C0326", Symbol: "bad-whitespace", Category: CategoryConvention, Description: "Wrong number of spaces around an operator, bracket or block opener.", RemovedIn: "2.6"},
	{ID: "C0330", Symbol: "bad-continuation", Category: CategoryConvention, Description: "Wrong hanging or continued indentation.", RemovedIn: "2.6"},
	{ID: "C0410", Symbol: "multiple-imports", Category: CategoryConvention, Description: "Several modules imported on one line."},
	{ID: "C0411", Symbol: "wrong-import-order", Category: CategoryConvention, Description: "Standard library import placed after a third party or local import."},
	{ID: "C0412", Symbol: "ungrouped-imports", Category: CategoryConvention, Description: "Imports from the same package are not grouped together."},
	{ID: "C0413", Symbol: "wrong-import-position", Category: CategoryConvention, Description: "Import placed after code instead of at the top of the module."},
	{ID: "C0415", Symbol: "import-outside-toplevel", Category: CategoryConvention, Description: "Import nested inside a function or class instead of at module level."},

	// Refactor
	{ID: "R0201", Symbol: "no-self-use", Category: CategoryRefactor, Description: "Method could be a function because it does not use its bound instance.", RemovedIn: "2.14"},
	{ID: "R0205", Symbol: "useless-object-inheritance", Category: CategoryRefactor, Description: "Class inherits from object explicitly, which Python 3 does implicitly."},
	{ID: "R0801", Symbol: "duplicate-code", Category: CategoryRefactor, Description: "Identical or similar code found in several files."},
	{ID: "R0901", Symbol: "too-many-ancestors", Category: CategoryRefactor, Description: "Class has too many parent classes."},
	{ID: "R0902", Symbol: "too-many-instance-attributes", Category: CategoryRefactor, Description: "Class has too many instance attributes."},
	{ID: "R0903", Symbol: "too-few-public-methods", Category: CategoryRefactor, Description: "Class has too few public methods to justify being a class."},
	{ID: "R0904", Symbol: "too-many-public-methods", Category: CategoryRefactor, Description: "Class has too many public methods."},
	{ID: "R0911", Symbol: "too-many-return-statements", Category: CategoryRefactor, Description: "Function or method has too many return statements."},
	{ID: "R0912", Symbol: "too-many-branches", Category: CategoryRefactor, Description: "Function or method has too many branches."},
	{ID: "R0913", Symbol: "too-many-arguments", Category: CategoryRefactor, Description: "Function or method takes too many arguments."},
	{ID: "R0914", Symbol: "too-many-locals", Category: CategoryRefactor, Description: "Function or method has too many local variables."},
	{ID: "R0915", Symbol: "too-many-statements", Category: CategoryRefactor, Description: "Function or method has too many statements."},
	{ID: "R0916", Symbol: "too-many-boolean-expressions", Category: CategoryRefactor, Description: "If statement contains too many boolean expressions."},
	{ID: "R1705", Symbol: "no-else-return", Category: CategoryRefactor, Description: "Else clause is unnecessary after a return."},
	{ID: "R1710", Symbol: "inconsistent-return-statements", Category: CategoryRefactor, Description: "Some paths of a function return an expression and others do not."},
	{ID: "R1720", Symbol: "no-else-raise", Category: CategoryRefactor, Description: "Else clause is unnecessary after a raise."},

	// Warning
	{ID: "W0102", Symbol: "dangerous-default-value", Category: CategoryWarning, Description: "Mutable value such as a list or dictionary used as a default argument."},
	{ID: "W0104", Symbol: "pointless-statement", Category: CategoryWarning, Description: "Statement has no effect."},
	{ID: "W0107", Symbol: "unnecessary-pass", Category: CategoryWarning, Description: "Pass statement that can be removed without affecting behaviour."},
	{ID: "W0201", Symbol: "attribute-defined-outside-init", Category: CategoryWarning, Description: "Instance attribute defined outside __init__."},
	{ID: "W0212", Symbol: "protected-access", Category: CategoryWarning, Description: "Protected member accessed from outside the owning class."},
	{ID: "W0221", Symbol: "arguments-differ", Category: CategoryWarning, Description: "Method signature differs from the overridden method."},
	{ID: "W0222", Symbol: "signature-differs", Category: CategoryWarning, Description: "Method signature differs from the signature in the parent class."},
	{ID: "W0223", Symbol: "abstract-method", Category: CategoryWarning, Description: "Abstract method from a parent class is not overridden."},
	{ID: "W0231", Symbol: "super-init-not-called", Category: CategoryWarning, Description: "Ancestor class __init__ is not called from a derived __init__."},
	{ID: "W0511", Symbol: "fixme", Category: CategoryWarning, Description: "Note tag such as FIXME or TODO found in a comment."},
	{ID: "W0611", Symbol: "unused-import", Category: CategoryWarning, Description: "Imported module or name is not used."},
	{ID: "W0612", Symbol: "unused-variable", Category: CategoryWarning, Description: "Local variable is assigned but never used."},
	{ID: "W0613", Symbol: "unused-argument", Category: CategoryWarning, Description: "Function or method argument is never used."},
	{ID: "W0621", Symbol: "redefined-outer-name", Category: CategoryWarning, Description: "Name from an outer scope is redefined."},
	{ID: "W0622", Symbol: "redefined-builtin", Category: CategoryWarning, Description: "Builtin name is redefined."},
	{ID: "W0631", Symbol: "undefined-loop-variable", Category: CategoryWarning, Description: "Loop variable used outside the loop that possibly never ran."},
	{ID: "W0703", Symbol: "broad-except", Category: CategoryWarning, Description: "Except clause catches a too general exception such as Exception.", RenamedTo: "broad-exception-caught"},
	{ID: "W0718", Symbol: "broad-exception-caught", Category: CategoryWarning, Description: "Except clause catches a too general exception such as Exception."},
	{ID: "W1202", Symbol: "logging-format-interpolation", Category: CategoryWarning, Description: "Logging call uses format() instead of passing parameters to the logging function."},
	{ID: "W1203", Symbol: "logging-fstring-interpolation", Category: CategoryWarning, Description: "Logging call uses an f-string instead of passing parameters to the logging function."},
	{ID: "W1514", Symbol: "unspecified-encoding", Category: CategoryWarning, Description: "open() called without an explicit encoding argument."},

	// Error
	{ID: "E0001", Symbol: "syntax-error", Category: CategoryError, Description: "Python source could not be parsed."},
	{ID: "E0102", Symbol: "function-redefined", Category: CategoryError, Description: "Function, class or method is redefined."},
	{ID: "E0211", Symbol: "no-method-argument", Category: CategoryError, Description: "Method has no argument, so it cannot receive its bound instance."},
	{ID: "E0213", Symbol: "no-self-argument", Category: CategoryError, Description: "Method's first argument is not named self."},
	{ID: "E0401", Symbol: "import-error", Category: CategoryError, Description: "Imported module could not be found."},
	{ID: "E0602", Symbol: "undefined-variable", Category: CategoryError, Description: "Undefined name is accessed."},
	{ID: "E0611", Symbol: "no-name-in-module", Category: CategoryError, Description: "Name does not exist in the imported module."},
	{ID: "E1101", Symbol: "no-member", Category: CategoryError, Description: "Accessed member does not exist on the inferred object type."},
	{ID: "E1102", Symbol: "not-callable", Category: CategoryError, Description: "Object inferred as not callable is being called."},
	{ID: "E1120", Symbol: "no-value-for-parameter", Category: CategoryError, Description: "Call passes no value for a required parameter."},
	{ID: "E1130", Symbol: "invalid-unary-operand-type", Category: CategoryError, Description: "Unary operand used on an object that does not support it."},
	{ID: "E1136", Symbol: "unsubscriptable-object", Category: CategoryError, Description: "Subscript applied to an object that does not support subscripting."},

	// Fatal
	{ID: "F0001", Symbol: "fatal", Category: CategoryFatal, Description: "Error prevented further processing of a module."},
	{ID: "F0002", Symbol: "astroid-error", Category: CategoryFatal, Description: "Unexpected internal error during module inspection."},
	{ID: "F0010", Symbol: "parse-error", Category: CategoryFatal, Description: "Module could not be parsed for analysis."},

	// Information
	{ID: "I0011", Symbol: "locally-disabled", Category: CategoryInformation, Description: "Inline comment disables a message for part of a file."},
	{ID: "I0013", Symbol: "file-ignored", Category: CategoryInformation, Description: "Inline comment ignores a whole file."},
	{ID: "I0021", Symbol: "useless-suppression", Category: CategoryInformation, Description: "Suppression comment disables a message that was not going to be emitted."},
	{ID: "I0023", Symbol: "use-symbolic-message-instead", Category: CategoryInformation, Description: "Message referenced by numeric id instead of its symbol."},
}
