package translator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/j2py/internal/lexer"
	"github.com/sumatoshi-tech/j2py/internal/parser"
	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/internal/translator"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

func translateSrc(t *testing.T, src string, cfg translator.Config) string {
	t.Helper()

	toks, err := lexer.ScanString(src)
	require.NoError(t, err)

	root, err := parser.New(token.NewStream(toks)).Parse()
	require.NoError(t, err)

	out, translateErr := translator.Translate(root, cfg)
	require.NoError(t, translateErr)

	return out
}

func TestTranslate_EmptyClassWithExtends(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, "public class A extends B {}", translator.DefaultConfig())

	assert.Equal(t, "class A(B):\n    pass\n", out)
}

func TestTranslate_InstanceFieldWithInitializer(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		public class Foo {
			private int x;
			public Foo(int x) { this.x = x; }
		}
	`, translator.DefaultConfig())

	assert.Equal(t, "class Foo:\n    def __init__(self, x: int):\n        self.x: int = x\n", out)
}

func TestTranslate_BareIdentifierFieldAssignmentInConstructor(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		public class Foo {
			private int count;
			public Foo() { count = 0; }
		}
	`, translator.DefaultConfig())

	assert.Equal(t, "class Foo:\n    def __init__(self):\n        self.count: int = 0\n", out)
}

func TestTranslate_OverloadedConstructorsCollapse(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		class Derived extends Base {
			private int x;
			public Derived() { this(0); }
			public Derived(int x) { super(x); this.x = x; }
		}
	`, translator.DefaultConfig())

	want := "class Derived(Base):\n" +
		"    def __init__(self, x: int = 0):\n" +
		"        super().__init__(x)\n" +
		"        self.x: int = x\n"

	assert.Equal(t, want, out)
}

func TestTranslate_CStyleForOverIntBoundsToRange(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		class C {
			void m() {
				for (int i = 0; i < 3; i++) System.out.println(i);
			}
		}
	`, translator.DefaultConfig())

	want := "class C:\n" +
		"    def m(self) -> None:\n" +
		"        for i in range(0, 3):\n" +
		"            print(i)\n"

	assert.Equal(t, want, out)
}

func TestTranslate_SwitchToMatchWithDefault(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		class C {
			void m() {
				switch (x) {
					case 1:
						System.out.println("one");
						break;
					default:
						System.out.println("other");
				}
			}
		}
	`, translator.DefaultConfig())

	want := "class C:\n" +
		"    def m(self) -> None:\n" +
		"        match x:\n" +
		"            case 1:\n" +
		"                print(\"one\")\n" +
		"            case _:\n" +
		"                print(\"other\")\n"

	assert.Equal(t, want, out)
}

func TestTranslate_MultiDeclaratorField(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, "class K { int a = 1, b = 2; }", translator.DefaultConfig())

	want := "class K:\n" +
		"    def __init__(self):\n" +
		"        self.a: int = 1\n" +
		"        self.b: int = 2\n"

	assert.Equal(t, want, out)
}

func TestTranslate_NoTypeHints(t *testing.T) {
	t.Parallel()

	cfg := translator.DefaultConfig()
	cfg.EmitTypeHints = false

	out := translateSrc(t, `
		public class Foo {
			private int x;
			public Foo(int x) { this.x = x; }
		}
	`, cfg)

	assert.Equal(t, "class Foo:\n    def __init__(self, x):\n        self.x: int = x\n", out)
}

func TestTranslate_AbstractMethodBecomesStub(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		abstract class Shape {
			abstract double area();
		}
	`, translator.DefaultConfig())

	want := "class Shape:\n" +
		"    def area(self) -> float:\n" +
		"        # TODO: abstract method, no Java body to translate\n" +
		"        ...\n"

	assert.Equal(t, want, out)
}

func TestTranslate_TryCatchFinally(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		class C {
			void m() {
				try {
					risky();
				} catch (IOException e) {
					handle(e);
				} finally {
					cleanup();
				}
			}
		}
	`, translator.DefaultConfig())

	want := "class C:\n" +
		"    def m(self) -> None:\n" +
		"        try:\n" +
		"            risky()\n" +
		"        except IOException as e:\n" +
		"            handle(e)\n" +
		"        finally:\n" +
		"            cleanup()\n"

	assert.Equal(t, want, out)
}

func TestTranslate_NonStrictSchemaEmitsTODOPlaceholder(t *testing.T) {
	t.Parallel()

	root := ast.New(ast.KindCompilationUnit, "", ast.New(ast.Kind("Bogus"), ""))

	out, err := translator.Translate(root, translator.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "# TODO: unknown Bogus")
}

func TestTranslate_StrictSchemaReturnsSchemaError(t *testing.T) {
	t.Parallel()

	root := ast.New(ast.KindCompilationUnit, "", ast.New(ast.Kind("Bogus"), ""))

	cfg := translator.DefaultConfig()
	cfg.StrictSchema = true

	out, err := translator.Translate(root, cfg)
	require.Error(t, err)
	assert.Empty(t, out)

	var schemaErr *translator.SchemaError

	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Bogus", schemaErr.Kind)
}

func TestTranslate_DoWhileAlwaysBecomesWhileTrue(t *testing.T) {
	t.Parallel()

	out := translateSrc(t, `
		class C {
			void m() {
				do {
					work();
				} while (hasMore());
			}
		}
	`, translator.DefaultConfig())

	want := "class C:\n" +
		"    def m(self) -> None:\n" +
		"        while True:\n" +
		"            work()\n" +
		"            if not (hasMore()):\n" +
		"                break\n"

	assert.Equal(t, want, out)
}
