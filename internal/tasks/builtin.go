package tasks

// Default values for the variables referenced by built-in commands.
// Callers may override them via the environment, the config file, or
// trailing NAME=VALUE arguments.
const (
	DefaultRepository = "testpypi"
	DefaultProject    = "tackle"
)

// Builtin returns the registry of built-in workflow tasks.
func Builtin() *Registry {
	r := NewRegistry()

	r.Register(Task{
		Name:     "clean-tox",
		Summary:  "remove tox testing artifacts",
		Commands: []string{"rm -rf .tox/"},
	})
	r.Register(Task{
		Name:    "clean-build",
		Summary: "remove build artifacts",
		Commands: []string{
			"rm -fr build/",
			"rm -fr dist/",
			"rm -fr .eggs/",
			"find . -name '*.egg-info' -exec rm -fr {} +",
			"find . -name '*.egg' -exec rm -f {} +",
		},
	})
	r.Register(Task{
		Name:    "clean-pyc",
		Summary: "remove Python file artifacts",
		Commands: []string{
			"find . -name '*.pyc' -exec rm -f {} +",
			"find . -name '*.pyo' -exec rm -f {} +",
			"find . -name '*~' -exec rm -f {} +",
			"find . -name '__pycache__' -exec rm -fr {} +",
		},
	})
	r.Register(Task{
		Name:    "clean",
		Summary: "remove all build, test and Python artifacts",
		Deps:    []string{"clean-tox", "clean-build", "clean-pyc"},
	})
	r.Register(Task{
		Name:     "lint",
		Summary:  "check style with flake8",
		Commands: []string{"tox -e lint"},
	})
	r.Register(Task{
		Name:     "test",
		Summary:  "run tests on the default environment",
		Commands: []string{"tox -e py"},
	})
	r.Register(Task{
		Name:     "test-all",
		Summary:  "run tests on every configured environment",
		Commands: []string{"tox"},
	})
	r.Register(Task{
		Name:     "test-providers",
		Summary:  "run the provider test environment",
		Commands: []string{"tox -e providers"},
	})
	r.Register(Task{
		Name:    "coverage",
		Summary: "check code coverage and open the report",
		Commands: []string{
			"coverage run --source $PROJECT -m pytest",
			"coverage report -m",
			"coverage html",
			"python -m webbrowser -t htmlcov/index.html",
		},
	})
	r.Register(Task{
		Name:     "provider-docs",
		Summary:  "generate provider documentation",
		Commands: []string{"tackle provider-docs.yaml"},
	})
	r.Register(Task{
		Name:    "docs",
		Summary: "generate Sphinx HTML documentation and open it",
		Deps:    []string{"provider-docs"},
		Commands: []string{
			"rm -f docs/$PROJECT.rst",
			"rm -f docs/modules.rst",
			"sphinx-apidoc -o docs/ $PROJECT",
			"make -C docs clean",
			"make -C docs html",
			"python -m webbrowser -t docs/_build/html/index.html",
		},
	})
	r.Register(Task{
		Name:        "servedocs",
		Summary:     "rebuild the documentation on file change",
		Commands:    []string{"watchmedo shell-command -p '*.rst' -c 'make -C docs html' -R -D ."},
		Interactive: true,
	})
	r.Register(Task{
		Name:    "submodules",
		Summary: "pull and update external repository subcomponents",
		Commands: []string{
			"git pull --recurse-submodules",
			"git submodule update --init --recursive",
		},
	})
	r.Register(Task{
		Name:    "release",
		Summary: "package and upload a release",
		Deps:    []string{"clean"},
		Commands: []string{
			"python setup.py sdist",
			"python setup.py bdist_wheel",
			"twine upload -r $PYPI_REPOSITORY dist/*",
		},
		Confirm: true,
	})
	r.Register(Task{
		Name:    "sdist",
		Summary: "build a source distribution",
		Commands: []string{
			"python setup.py sdist",
			"ls -l dist",
		},
	})
	r.Register(Task{
		Name:    "wheel",
		Summary: "build a wheel distribution",
		Commands: []string{
			"python setup.py bdist_wheel",
			"ls -l dist",
		},
	})
	// The default action. No summary on purpose: the listing documents
	// the workflow tasks, not itself.
	r.Register(Task{Name: "help"})

	return r
}
