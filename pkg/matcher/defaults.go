package matcher

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// BuiltinIgnore is reported as IgnoredBy when only DefaultIgnorePatterns
// exclude a path
const BuiltinIgnore = "built-in patterns"

// DefaultIgnorePatterns are paths an agent should never read: build output,
// caches and files that commonly carry credentials. They apply on top of the
// project ignore files.
var DefaultIgnorePatterns = []string{
	"**/*.snap",
	"**/*.liquid",
	"**/.git",
	"**/dist",
	"**/*.pyc",
	"**/.DS_Store",
	"**/.vscode",
	"**/__pycache__",
	"**/coverage",
	"**/.next",
	"**/example",
	"**/__snapshots__",
	"**/.gradle",
	"**/xcuserdata",
	"**/.build",
	"**/*.zip",

	// Keys and certificates
	"**/*.pem",
	"**/*.key",
	"**/*.p12",
	"**/*.pfx",
	"**/*.cer",
	"**/*.crt",
	"**/*.der",
	"**/*.p7b",
	"**/*.p7c",
	"**/*.jks",
	"**/*.keystore",

	// SSH
	"**/id_rsa",
	"**/id_rsa.*",
	"**/id_dsa",
	"**/id_dsa.*",
	"**/id_ecdsa",
	"**/id_ecdsa.*",
	"**/id_ed25519",
	"**/id_ed25519.*",
	"**/.ssh/**",
	"**/known_hosts",
	"**/authorized_keys",

	// Cloud credentials
	"**/.aws/**",
	"**/credentials",
	"**/.gcp/**",
	"**/.azure/**",
	"**/gcloud/**",
	"**/google-credentials.json",
	"**/gcp-key.json",
	"**/service-account*.json",

	// Tokens
	"**/.pypirc",
	"**/.dockercfg",
	"**/.docker/config.json",
	"**/token.json",
	"**/tokens.json",
	"**/secrets.json",
	"**/secret.json",
	"**/api-keys.json",
	"**/apikeys.json",

	// Databases and dumps
	"**/*.sql",
	"**/*.sqlite",
	"**/*.sqlite3",
	"**/*.db",
	"**/*.dump",
	"**/*.bak",

	// Passwords
	"**/passwd",
	"**/password",
	"**/passwords",
	"**/.htpasswd",
	"**/shadow",

	// Git credentials
	"**/.git-credentials",
	"**/.gitconfig",
	"**/.netrc",

	// Kubernetes
	"**/kubeconfig",
	"**/.kube/**",
	"**/k8s-secrets.yaml",
	"**/k8s-secrets.yml",

	// Terraform
	"**/*.tfstate",
	"**/*.tfstate.*",
	"**/.terraform/**",

	"**/.history",
	"**/.bash_history",
	"**/.zsh_history",
	"**/wallet.dat",
	"**/.gnupg/**",
	"**/private.xml",
	"**/signing.properties",
	"**/*.ovpn",
	"**/wp-config.php",
	"**/config.inc.php",
	"**/local_settings.py",
	"**/database.yml",
	"**/secrets.yml",
	"**/.tox/**",
	"**/firebase-adminsdk*.json",
	"**/firebaseConfig.json",
	"**/google-services.json",
	"**/GoogleService-Info.plist",
}

// builtinIgnored reports whether a default pattern matches rel or one of its
// parent directories, so "**/dist" also covers "dist/app.js"
func builtinIgnored(rel string) bool {
	parts := strings.Split(rel, "/")
	for i := range parts {
		prefix := strings.Join(parts[:i+1], "/")
		for _, p := range DefaultIgnorePatterns {
			if ok, err := doublestar.Match(p, prefix); err == nil && ok {
				return true
			}
		}
	}
	return false
}
