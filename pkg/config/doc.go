/*
Package config loads the defaults cipha applies when flags are not given.

	            +-------------+
	            |   Config    |
	            | (defaults)  |
	            +------+------+
	                   |
	   +---------------+---------------+
	   |               |               |
	+--+---+        +--+---+        +--+---+
	| YAML |        | JSON |        | HCL  |
	+------+        +------+        +------+
	                   |
	            +------+------+
	            |  CIPHA_*    |
	            |  env / .env |
	            +-------------+

🔄 Flow:
1. Start from Default (shift 3, rails 3)
2. Decode the file with the parser registered for its extension
3. Overlay CIPHA_* environment variables
4. Validate

The .env files in the working directory and next to the config file are
loaded before anything is decoded, so HCL env expressions see them too.

📝 Example file:

	cipher: vigenere
	key: lemon
	strict: true
	batch:
	  suffix: .enc
	  concurrency: 4
	  ignore: ["*.bak", "vendor/**"]

HCL files can read the environment through the env object:

	cipher = "vigenere"
	key    = env.VIGENERE_KEY

	batch {
	  concurrency = 2
	}

Command line flags always win over anything loaded here.
*/
package config
