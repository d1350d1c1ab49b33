package options

func init() {
	for _, opt := range catalog {
		Register(opt)
	}
}

// catalog lists the options the checker understands, grouped by
// canonical section. Defaults are the values a run without any
// configuration file uses.
var catalog = []Option{
	// MASTER
	{
		Key:         "ignore",
		Section:     "MASTER",
		Kind:        KindNameList,
		Default:     "CVS",
		Description: "Files or directories to be skipped. They should be base names, not paths.",
	},
	{
		Key:         "ignore-patterns",
		Section:     "MASTER",
		Kind:        KindRegexpList,
		Description: "Files or directories matching the regex patterns are skipped. The regex matches against base names, not paths.",
	},
	{
		Key:         "persistent",
		Section:     "MASTER",
		Kind:        KindBool,
		Default:     "yes",
		Description: "Pickle collected data for later comparisons.",
	},
	{
		Key:         "load-plugins",
		Section:     "MASTER",
		Kind:        KindNameList,
		Description: "List of plugins (as comma separated values of python module names) to load.",
	},
	{
		Key:         "jobs",
		Section:     "MASTER",
		Kind:        KindInt,
		Default:     "1",
		Description: "Use multiple processes to speed up the run; 0 autodetects the number of processors.",
	},
	{
		Key:         "unsafe-load-any-extension",
		Section:     "MASTER",
		Kind:        KindBool,
		Default:     "no",
		Description: "Allow loading of arbitrary C extensions. Extensions are imported into the active interpreter and may run arbitrary code.",
	},
	{
		Key:         "extension-pkg-whitelist",
		Section:     "MASTER",
		Kind:        KindNameList,
		Description: "List of packages for which C extension member checks are disabled.",
		Deprecated:  true,
		ReplacedBy:  "extension-pkg-allow-list",
	},
	{
		Key:         "extension-pkg-allow-list",
		Section:     "MASTER",
		Kind:        KindNameList,
		Description: "List of packages for which C extension member checks are disabled.",
	},
	{
		Key:         "suggestion-mode",
		Section:     "MASTER",
		Kind:        KindBool,
		Default:     "yes",
		Description: "When enabled, emit user-friendly hints instead of false-positive errors.",
	},
	{
		Key:         "limit-inference-results",
		Section:     "MASTER",
		Kind:        KindInt,
		Default:     "100",
		Description: "Maximum number of results the type inferer returns for one expression.",
	},

	// MESSAGES CONTROL
	{
		Key:         "disable",
		Section:     "MESSAGES CONTROL",
		Kind:        KindSymbolList,
		Description: "Messages, message categories or checkers to suppress, given as ids or symbols.",
	},
	{
		Key:         "enable",
		Section:     "MESSAGES CONTROL",
		Kind:        KindSymbolList,
		Description: "Messages, message categories or checkers to enable, given as ids or symbols.",
	},
	{
		Key:         "confidence",
		Section:     "MESSAGES CONTROL",
		Kind:        KindNameList,
		Description: "Only show warnings with the listed confidence levels. Leave empty to show all.",
	},

	// REPORTS
	{
		Key:         "output-format",
		Section:     "REPORTS",
		Kind:        KindChoice,
		Default:     "text",
		Choices:     []string{"text", "parseable", "colorized", "json", "msvs"},
		Description: "Output format for the report.",
	},
	{
		Key:         "reports",
		Section:     "REPORTS",
		Kind:        KindBool,
		Default:     "no",
		Description: "Display a full report instead of only the messages.",
	},
	{
		Key:         "score",
		Section:     "REPORTS",
		Kind:        KindBool,
		Default:     "yes",
		Description: "Activate the evaluation score.",
	},
	{
		Key:         "evaluation",
		Section:     "REPORTS",
		Kind:        KindString,
		Default:     "10.0 - ((float(5 * error + warning + refactor + convention) / statement) * 10)",
		Description: "Expression that computes the global score from message counts.",
	},
	{
		Key:         "msg-template",
		Section:     "REPORTS",
		Kind:        KindString,
		Description: "Template used to display messages.",
	},

	// REFACTORING
	{
		Key:         "max-nested-blocks",
		Section:     "REFACTORING",
		Kind:        KindInt,
		Default:     "5",
		Description: "Maximum number of nested blocks for a function or method body.",
	},
	{
		Key:         "never-returning-functions",
		Section:     "REFACTORING",
		Kind:        KindNameList,
		Default:     "sys.exit",
		Description: "Complete name of functions that never return.",
	},

	// BASIC
	{
		Key:         "good-names",
		Section:     "BASIC",
		Kind:        KindNameList,
		Default:     "i,j,k,ex,Run,_",
		Description: "Good variable names which should always be accepted.",
	},
	{
		Key:         "bad-names",
		Section:     "BASIC",
		Kind:        KindNameList,
		Default:     "foo,bar,baz,toto,tutu,tata",
		Description: "Bad variable names which should always be refused.",
	},
	{
		Key:         "name-group",
		Section:     "BASIC",
		Kind:        KindNameList,
		Description: "Colon-delimited sets of names that determine each other's naming style.",
	},
	{
		Key:         "include-naming-hint",
		Section:     "BASIC",
		Kind:        KindBool,
		Default:     "no",
		Description: "Include a hint for the correct naming format with invalid-name messages.",
	},
	{
		Key:         "function-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "[a-z_][a-z0-9_]{2,30}$",
		Description: "Regular expression matching correct function names.",
	},
	{
		Key:         "method-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "[a-z_][a-z0-9_]{2,30}$",
		Description: "Regular expression matching correct method names.",
	},
	{
		Key:         "variable-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "[a-z_][a-z0-9_]{2,30}$",
		Description: "Regular expression matching correct variable names.",
	},
	{
		Key:         "const-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "(([A-Z_][A-Z0-9_]*)|(__.*__))$",
		Description: "Regular expression matching correct constant names.",
	},
	{
		Key:         "attr-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "[a-z_][a-z0-9_]{2,30}$",
		Description: "Regular expression matching correct attribute names.",
	},
	{
		Key:         "argument-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "[a-z_][a-z0-9_]{2,30}$",
		Description: "Regular expression matching correct argument names.",
	},
	{
		Key:         "class-attribute-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "([A-Za-z_][A-Za-z0-9_]{2,30}|(__.*__))$",
		Description: "Regular expression matching correct class attribute names.",
	},
	{
		Key:         "inlinevar-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "[A-Za-z_][A-Za-z0-9_]*$",
		Description: "Regular expression matching correct inline iteration names.",
	},
	{
		Key:         "class-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "[A-Z_][a-zA-Z0-9]+$",
		Description: "Regular expression matching correct class names.",
	},
	{
		Key:         "module-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "(([a-z_][a-z0-9_]*)|([A-Z][a-zA-Z0-9]+))$",
		Description: "Regular expression matching correct module names.",
	},
	{
		Key:         "no-docstring-rgx",
		Section:     "BASIC",
		Kind:        KindRegexp,
		Default:     "^_",
		Description: "Regular expression matching function or class names that do not require a docstring.",
	},
	{
		Key:         "docstring-min-length",
		Section:     "BASIC",
		Kind:        KindInt,
		Default:     "-1",
		Description: "Minimum line length for functions or classes that require a docstring; shorter ones are exempt.",
	},

	// FORMAT
	{
		Key:         "max-line-length",
		Section:     "FORMAT",
		Kind:        KindInt,
		Default:     "100",
		Description: "Maximum number of characters on a single line.",
	},
	{
		Key:         "ignore-long-lines",
		Section:     "FORMAT",
		Kind:        KindRegexp,
		Default:     `^\s*(# )?<?https?://\S+>?$`,
		Description: "Regexp for lines that are allowed to be longer than the limit.",
	},
	{
		Key:         "single-line-if-stmt",
		Section:     "FORMAT",
		Kind:        KindBool,
		Default:     "no",
		Description: "Allow the body of an if to be on the same line as the test if there is no else.",
	},
	{
		Key:         "single-line-class-stmt",
		Section:     "FORMAT",
		Kind:        KindBool,
		Default:     "no",
		Description: "Allow the body of a class to be on the same line as the declaration if the body contains a single statement.",
	},
	{
		Key:         "max-module-lines",
		Section:     "FORMAT",
		Kind:        KindInt,
		Default:     "1000",
		Description: "Maximum number of lines in a module.",
	},
	{
		Key:         "indent-string",
		Section:     "FORMAT",
		Kind:        KindString,
		Default:     "    ",
		Description: "String used as indentation unit.",
	},
	{
		Key:         "indent-after-paren",
		Section:     "FORMAT",
		Kind:        KindInt,
		Default:     "4",
		Description: "Number of spaces of indent required inside a hanging or continued line.",
	},
	{
		Key:         "expected-line-ending-format",
		Section:     "FORMAT",
		Kind:        KindChoice,
		Choices:     []string{"", "LF", "CRLF"},
		Description: "Expected format of line endings.",
	},

	// LOGGING
	{
		Key:         "logging-format-style",
		Section:     "LOGGING",
		Kind:        KindChoice,
		Default:     "old",
		Choices:     []string{"old", "new"},
		Description: "The type of string formatting logging methods use: old (%) or new ({}).",
	},
	{
		Key:         "logging-modules",
		Section:     "LOGGING",
		Kind:        KindNameList,
		Default:     "logging",
		Description: "Logging modules to check for string format arguments in logging function calls.",
	},

	// MISCELLANEOUS
	{
		Key:         "notes",
		Section:     "MISCELLANEOUS",
		Kind:        KindNameList,
		Default:     "FIXME,XXX,TODO",
		Description: "List of note tags to take in consideration.",
	},

	// SIMILARITIES
	{
		Key:         "min-similarity-lines",
		Section:     "SIMILARITIES",
		Kind:        KindInt,
		Default:     "4",
		Description: "Minimum lines number of a similarity.",
	},
	{
		Key:         "ignore-comments",
		Section:     "SIMILARITIES",
		Kind:        KindBool,
		Default:     "yes",
		Description: "Ignore comments when computing similarities.",
	},
	{
		Key:         "ignore-docstrings",
		Section:     "SIMILARITIES",
		Kind:        KindBool,
		Default:     "yes",
		Description: "Ignore docstrings when computing similarities.",
	},
	{
		Key:         "ignore-imports",
		Section:     "SIMILARITIES",
		Kind:        KindBool,
		Default:     "no",
		Description: "Ignore imports when computing similarities.",
	},

	// TYPECHECK
	{
		Key:         "ignore-mixin-members",
		Section:     "TYPECHECK",
		Kind:        KindBool,
		Default:     "yes",
		Description: "Suppress missing member warnings for classes with an ignored-checks-for-mixins pattern name.",
		Deprecated:  true,
		ReplacedBy:  "ignored-checks-for-mixins",
	},
	{
		Key:         "ignored-modules",
		Section:     "TYPECHECK",
		Kind:        KindNameList,
		Description: "Modules for which member attributes should not be checked.",
	},
	{
		Key:         "ignored-classes",
		Section:     "TYPECHECK",
		Kind:        KindNameList,
		Default:     "optparse.Values,thread._local,_thread._local",
		Description: "Classes names for which member attributes should not be checked.",
	},
	{
		Key:         "generated-members",
		Section:     "TYPECHECK",
		Kind:        KindRegexpList,
		Description: "Members which are set dynamically and missed by static analysis.",
	},
	{
		Key:         "contextmanager-decorators",
		Section:     "TYPECHECK",
		Kind:        KindNameList,
		Default:     "contextlib.contextmanager",
		Description: "Decorators that produce context managers.",
	},
	{
		Key:         "missing-member-hint",
		Section:     "TYPECHECK",
		Kind:        KindBool,
		Default:     "yes",
		Description: "Show a hint with possible names when a member name was not found.",
	},
	{
		Key:         "missing-member-hint-distance",
		Section:     "TYPECHECK",
		Kind:        KindInt,
		Default:     "1",
		Description: "Edit distance a name can have to be considered a similar match for a missing member.",
	},
	{
		Key:         "missing-member-max-choices",
		Section:     "TYPECHECK",
		Kind:        KindInt,
		Default:     "1",
		Description: "Total number of similar names that should be shown as hints when a member was not found.",
	},

	// VARIABLES
	{
		Key:         "init-import",
		Section:     "VARIABLES",
		Kind:        KindBool,
		Default:     "no",
		Description: "Tell whether we should check for unused import in __init__ files.",
	},
	{
		Key:         "dummy-variables-rgx",
		Section:     "VARIABLES",
		Kind:        KindRegexp,
		Default:     "_+$|(_[a-zA-Z0-9_]*[a-zA-Z0-9]+?$)|dummy|^ignored_|^unused_",
		Description: "Regular expression matching names of dummy variables.",
	},
	{
		Key:         "additional-builtins",
		Section:     "VARIABLES",
		Kind:        KindNameList,
		Description: "List of additional names supposed to be defined in builtins.",
	},
	{
		Key:         "callbacks",
		Section:     "VARIABLES",
		Kind:        KindNameList,
		Default:     "cb_,_cb",
		Description: "List of strings which can identify a callback function by name.",
	},
	{
		Key:         "redefining-builtins-modules",
		Section:     "VARIABLES",
		Kind:        KindNameList,
		Default:     "six.moves,past.builtins,future.builtins,builtins,io",
		Description: "List of qualified module names which can have objects that redefine builtins.",
	},
	{
		Key:         "allow-global-unused-variables",
		Section:     "VARIABLES",
		Kind:        KindBool,
		Default:     "yes",
		Description: "Tell whether unused global variables should be treated as a violation.",
	},

	// CLASSES
	{
		Key:         "defining-attr-methods",
		Section:     "CLASSES",
		Kind:        KindNameList,
		Default:     "__init__,__new__,setUp,__post_init__",
		Description: "List of method names used to declare (i.e. assign) instance attributes.",
	},
	{
		Key:         "valid-classmethod-first-arg",
		Section:     "CLASSES",
		Kind:        KindNameList,
		Default:     "cls",
		Description: "List of valid names for the first argument in a class method.",
	},
	{
		Key:         "valid-metaclass-classmethod-first-arg",
		Section:     "CLASSES",
		Kind:        KindNameList,
		Default:     "cls",
		Description: "List of valid names for the first argument in a metaclass class method.",
	},
	{
		Key:         "exclude-protected",
		Section:     "CLASSES",
		Kind:        KindNameList,
		Default:     "_asdict,_fields,_replace,_source,_make",
		Description: "List of member names which should be excluded from the protected access warning.",
	},

	// DESIGN
	{
		Key:         "max-args",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "5",
		Description: "Maximum number of arguments for function or method.",
	},
	{
		Key:         "ignored-argument-names",
		Section:     "DESIGN",
		Kind:        KindRegexp,
		Default:     "_.*|^ignored_|^unused_",
		Description: "Argument names that match this expression will be ignored.",
	},
	{
		Key:         "max-locals",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "15",
		Description: "Maximum number of locals for function or method body.",
	},
	{
		Key:         "max-returns",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "6",
		Description: "Maximum number of return or yield for function or method body.",
	},
	{
		Key:         "max-branches",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "12",
		Description: "Maximum number of branch for function or method body.",
	},
	{
		Key:         "max-statements",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "50",
		Description: "Maximum number of statements in function or method body.",
	},
	{
		Key:         "max-parents",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "7",
		Description: "Maximum number of parents for a class.",
	},
	{
		Key:         "max-attributes",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "7",
		Description: "Maximum number of attributes for a class.",
	},
	{
		Key:         "min-public-methods",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "2",
		Description: "Minimum number of public methods for a class.",
	},
	{
		Key:         "max-public-methods",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "20",
		Description: "Maximum number of public methods for a class.",
	},
	{
		Key:         "max-bool-expr",
		Section:     "DESIGN",
		Kind:        KindInt,
		Default:     "5",
		Description: "Maximum number of boolean expressions in an if statement.",
	},

	// IMPORTS
	{
		Key:         "deprecated-modules",
		Section:     "IMPORTS",
		Kind:        KindNameList,
		Default:     "optparse,tkinter.tix",
		Description: "Deprecated modules which should not be used.",
	},
	{
		Key:         "known-third-party",
		Section:     "IMPORTS",
		Kind:        KindNameList,
		Default:     "enchant",
		Description: "Force import order to recognize a module as part of a third party library.",
	},
	{
		Key:         "allow-wildcard-with-all",
		Section:     "IMPORTS",
		Kind:        KindBool,
		Default:     "no",
		Description: "Allow wildcard imports from modules that define __all__.",
	},
	{
		Key:         "analyse-fallback-blocks",
		Section:     "IMPORTS",
		Kind:        KindBool,
		Default:     "no",
		Description: "Analyse import fallback blocks to support both Python 2 and 3 compatible code.",
	},

	// EXCEPTIONS
	{
		Key:         "overgeneral-exceptions",
		Section:     "EXCEPTIONS",
		Kind:        KindNameList,
		Default:     "BaseException,Exception",
		Description: "Exceptions that will emit a warning when caught.",
	},
}
